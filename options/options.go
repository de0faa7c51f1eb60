package options

type ReflectEnum int

const (
	OptionManualOnly    ReflectEnum = 1 << iota // disable automatic probing: every reflected type needs a registered descriptor
	OptionCacheDisabled                         // resolve descriptors fresh on every request instead of memoizing per type

	OptionAll  = (1 << iota) - 1 // all options combined
	OptionNone = 0               // no options selected
)

// Has reports whether all bits of flag are set.
func (o ReflectEnum) Has(flag ReflectEnum) bool {
	return o&flag == flag
}
