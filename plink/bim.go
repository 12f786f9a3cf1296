package plink

import (
	"fmt"
	"io"
	"strconv"
)

// Field indices of a .bim line.
const (
	bimChromosome int = iota
	bimVariantID
	bimMorgans
	bimCoordinate
	bimAllele1
	bimAllele2
	bimColumns
)

// A .map file carries the first four .bim columns.
const mapColumns = bimAllele1

// Variant is one line of a .bim or .map file. Alleles are left empty for .map
// input and may be multi-base codes.
type Variant struct {
	Chromosome string
	VariantID  string
	Morgans    float64
	Coordinate uint32 // base-pair position
	Allele1    string
	Allele2    string
}

// ID joins the chromosome and variant identifier.
func (v Variant) ID() string {
	return v.Chromosome + "_" + v.VariantID
}

// ReadBim parses the variants of a .bim file.
func ReadBim(r io.Reader, name string) ([]Variant, error) {
	return readVariants(r, name, bimColumns)
}

// ReadMap parses the variants of a legacy .map file.
func ReadMap(r io.Reader, name string) ([]Variant, error) {
	return readVariants(r, name, mapColumns)
}

func readVariants(r io.Reader, name string, columns int) ([]Variant, error) {
	var variants []Variant
	err := scanFields(r, name, columns, func(line int, f []string) error {
		morgans, err := strconv.ParseFloat(f[bimMorgans], 64)
		if err != nil {
			return &ParseError{File: name, Line: line, Msg: fmt.Sprintf("invalid genetic distance %q", f[bimMorgans])}
		}
		coord, err := strconv.ParseUint(f[bimCoordinate], 10, 32)
		if err != nil {
			return &ParseError{File: name, Line: line, Msg: fmt.Sprintf("invalid coordinate %q", f[bimCoordinate])}
		}

		v := Variant{
			Chromosome: f[bimChromosome],
			VariantID:  f[bimVariantID],
			Morgans:    morgans,
			Coordinate: uint32(coord),
		}
		if columns == bimColumns {
			v.Allele1 = f[bimAllele1]
			v.Allele2 = f[bimAllele2]
		}
		variants = append(variants, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return variants, nil
}
