package kernel

import (
	"fmt"

	"parcellocker/internal/pkg/errs"
)

// Size is the closed parcel/locker size enumeration. Rent and Locker share
// the same domain: a rent can only be assigned to a locker of matching size.
type Size int

const (
	// SizeUnknown catches uninitialized Size values.
	SizeUnknown Size = iota
	SizeSmall
	SizeMedium
	SizeLarge
)

func getSizeStrings() map[Size]string {
	return map[Size]string{
		SizeSmall:  "S",
		SizeMedium: "M",
		SizeLarge:  "L",
	}
}

// SizeFromString parses the wire representation of a size.
func SizeFromString(s string) (Size, error) {
	for size, str := range getSizeStrings() {
		if str == s {
			return size, nil
		}
	}
	return SizeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"size", fmt.Errorf("%q is not a supported size", s))
}

// String returns the wire representation, or "UNKNOWN" for invalid values.
func (s Size) String() string {
	if str, ok := getSizeStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate rejects SizeUnknown and any value outside the closed set.
func (s Size) Validate() error {
	if _, ok := getSizeStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"size", fmt.Errorf("%d is not a valid size", s))
	}
	return nil
}
