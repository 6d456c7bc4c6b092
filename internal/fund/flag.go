package fund

// Flag is the two-state purchasable/discount marker. The 是/否 literals only
// appear when a flag is rendered for storage or display.
type Flag int

const (
	FlagNo Flag = iota
	FlagYes
)

// String returns the stored literal for the flag.
func (f Flag) String() string {
	if f == FlagYes {
		return "是"
	}
	return "否"
}

// ParseFlag maps a stored literal back to a Flag. Anything other than 是 is
// treated as no.
func ParseFlag(s string) Flag {
	if s == "是" {
		return FlagYes
	}
	return FlagNo
}
