package persistence

const (
	BedExt = ".bed"
	FamExt = ".fam"
	BimExt = ".bim"
	MapExt = ".map"
)

// BedPath returns the genotype file of a PLINK fileset.
func BedPath(basepath string) string { return basepath + BedExt }

// FamPath returns the sample sidecar of a PLINK fileset.
func FamPath(basepath string) string { return basepath + FamExt }

// BimPath returns the variant sidecar of a PLINK fileset.
func BimPath(basepath string) string { return basepath + BimExt }

// MapPath returns the legacy 4-column variant sidecar of a PLINK fileset.
func MapPath(basepath string) string { return basepath + MapExt }
