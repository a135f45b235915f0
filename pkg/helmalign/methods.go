package helmalign

// Methods lists the supported aligner flavors; each is a separate entry
// point of the MAFFT distribution.
var Methods = []string{
	"auto", "mafft", "linsi", "ginsi", "einsi",
	"fftns", "fftnsi", "nwns", "nwnsi",
}

// RealignMethods lists the supported ways of adding new sequences into an
// existing alignment.
var RealignMethods = []string{
	"add", "addfull", "addlong", "addfragments", "addprofile",
}

// ValidMethod reports whether s is a supported alignment method.
func ValidMethod(s string) bool {
	return contains(Methods, s)
}

// ValidRealignMethod reports whether s is a supported realignment method.
func ValidRealignMethod(s string) bool {
	return contains(RealignMethods, s)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
