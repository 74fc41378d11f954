package resolver

// DefaultAnchor is the root namespace lazy imports resolve against when a
// scope is constructed without an explicit anchor.
const DefaultAnchor = "Object"

// KernelConstants is the fixed bootstrap set pre-seeded into the constant
// category of a scope constructed with LazyLoad and ImportKernel.
var KernelConstants = []string{
	"Kernel",
	"Object",
	"BasicObject",
	"Module",
	"Class",
	"Comparable",
	"Enumerable",
	"Struct",
	"NilClass",
	"TrueClass",
	"FalseClass",
	"Integer",
	"Float",
	"String",
	"Symbol",
	"Array",
	"Hash",
	"Range",
	"Regexp",
	"IO",
	"File",
	"Math",
}
