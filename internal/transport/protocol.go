package transport

import (
	"fmt"
	"strings"
)

// Family selects the acoustic modulation family the codec transmits with.
type Family string

const (
	FamilyAudible    Family = "audible"
	FamilyUltrasound Family = "ultrasound"
	FamilyDataTone   Family = "dt"
	FamilyMultiTone  Family = "mt"
)

// Speed selects the symbol timing variant within a family.
type Speed string

const (
	SpeedNormal  Speed = "normal"
	SpeedFast    Speed = "fast"
	SpeedFastest Speed = "fastest"
)

// Families lists the modulation families in the order surfaces present them.
func Families() []Family {
	return []Family{FamilyAudible, FamilyUltrasound, FamilyDataTone, FamilyMultiTone}
}

// Speeds lists the timing variants from slowest to fastest.
func Speeds() []Speed {
	return []Speed{SpeedNormal, SpeedFast, SpeedFastest}
}

// Protocol pairs a modulation family with a timing variant.
type Protocol struct {
	Family Family
	Speed  Speed
}

// Token renders the protocol in the family:speed form the codec accepts.
func (p Protocol) Token() string {
	return string(p.Family) + ":" + string(p.Speed)
}

// Protocols enumerates all twelve valid family/speed combinations.
func Protocols() []Protocol {
	combos := make([]Protocol, 0, len(Families())*len(Speeds()))
	for _, family := range Families() {
		for _, speed := range Speeds() {
			combos = append(combos, Protocol{Family: family, Speed: speed})
		}
	}
	return combos
}

// ParseProtocol validates a raw token against the twelve-member grid.
func ParseProtocol(token string) (Protocol, error) {
	trimmed := strings.ToLower(strings.TrimSpace(token))
	family, speed, found := strings.Cut(trimmed, ":")
	if !found {
		return Protocol{}, fmt.Errorf("%w: %q (expected family:speed)", ErrProtocolToken, token)
	}
	if !validFamily(Family(family)) {
		return Protocol{}, fmt.Errorf("%w: unknown family %q", ErrProtocolToken, family)
	}
	if !validSpeed(Speed(speed)) {
		return Protocol{}, fmt.Errorf("%w: unknown speed %q", ErrProtocolToken, speed)
	}
	return Protocol{Family: Family(family), Speed: Speed(speed)}, nil
}

func validFamily(f Family) bool {
	switch f {
	case FamilyAudible, FamilyUltrasound, FamilyDataTone, FamilyMultiTone:
		return true
	}
	return false
}

func validSpeed(s Speed) bool {
	switch s {
	case SpeedNormal, SpeedFast, SpeedFastest:
		return true
	}
	return false
}
