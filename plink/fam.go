package plink

import (
	"fmt"
	"io"
	"strconv"
)

// Map columns in the FAM file to their positions
const (
	famFamilyID int = iota
	famIndividualID
	famPaternalID
	famMaternalID
	famSex
	famPhenotype
	famColumns
)

type Sex uint8

const (
	SexUnknown Sex = iota
	SexMale
	SexFemale
)

func (s Sex) String() string {
	switch s {
	case SexMale:
		return "male"
	case SexFemale:
		return "female"
	default:
		return "unknown"
	}
}

func parseSex(s string) Sex {
	switch s {
	case "1":
		return SexMale
	case "2":
		return SexFemale
	default:
		return SexUnknown
	}
}

// Sample is one row of a .fam file.
type Sample struct {
	FamilyID     string
	IndividualID string
	PaternalID   string // "0" when unknown
	MaternalID   string // "0" when unknown
	Sex          Sex
	Phenotype    string // Kept verbatim: case/control codes or a quantitative value
}

// ID joins the family and individual identifiers, which together are unique.
func (s Sample) ID() string {
	return s.FamilyID + "_" + s.IndividualID
}

// ReadFam parses the samples of a .fam file.
func ReadFam(r io.Reader, name string) ([]Sample, error) {
	var samples []Sample
	err := scanFields(r, name, famColumns, func(line int, f []string) error {
		samples = append(samples, Sample{
			FamilyID:     f[famFamilyID],
			IndividualID: f[famIndividualID],
			PaternalID:   f[famPaternalID],
			MaternalID:   f[famMaternalID],
			Sex:          parseSex(f[famSex]),
			Phenotype:    f[famPhenotype],
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return samples, nil
}

// PhenotypeValue parses the phenotype column. PLINK's missing codes (-9, 0, NA)
// report ok == false.
func (s Sample) PhenotypeValue() (v float64, ok bool) {
	switch s.Phenotype {
	case "-9", "0", "NA", "nan":
		return 0, false
	}
	v, err := strconv.ParseFloat(s.Phenotype, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func (s Sample) String() string {
	return fmt.Sprintf("%v (%v)", s.ID(), s.Sex)
}
