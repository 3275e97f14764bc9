/*
 * scan.go, part of ljscan.
 *
 *
 * Copyright 2021 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 * ljscan is developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package lj

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

//The argon pair
const (
	ArgonEpsilonEV = 0.0103 //well depth, eV
	ArgonSigma     = 3.40   //A
)

//ArgonDistances returns the 6 separations, in A, of the argon scan.
func ArgonDistances() []float64 {
	return []float64{3.0, 3.4, 3.8, 4.2, 4.6, 5.0}
}

//Argon returns the Lennard-Jones parameters for a pair of argon atoms.
func Argon() *Pair {
	return NewPairEV(ArgonEpsilonEV, ArgonSigma)
}

//Grid returns n evenly spaced distances from from to to, both included.
func Grid(from, to float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, invalidf("Grid", "at least 2 points are needed, got %d", n)
	}
	if err := checkDistance(from, "Grid"); err != nil {
		return nil, err
	}
	if to <= from {
		return nil, invalidf("Grid", "the grid end (%g) must be larger than its start (%g)", to, from)
	}
	return floats.Span(make([]float64, n), from, to), nil
}

//Scan contains the energies of a pair evaluated at a set of distances.
//Energies[i] corresponds to Distances[i].
type Scan struct {
	Pair      *Pair
	Distances []float64
	Energies  []float64
}

//Min is the result of a minimum search over a Scan
type Min struct {
	Energy   float64 //J
	Index    int
	Distance float64 //A. 0 if no energy in the scan was used.
}

//Scan evaluates the energy of the pair at each of the distances, in order.
func (P *Pair) Scan(distances []float64) (*Scan, error) {
	S, err := P.newScan(distances)
	if err != nil {
		return nil, errDecorate(err, "Scan")
	}
	for i, r := range distances {
		S.Energies[i] = Potential(P.Epsilon, P.Sigma, r)
	}
	return S, nil
}

//ScanConc is like Scan, but each distance is evaluated in its own goroutine.
//The order of the energies is the order of the distances.
func (P *Pair) ScanConc(distances []float64) (*Scan, error) {
	S, err := P.newScan(distances)
	if err != nil {
		return nil, errDecorate(err, "ScanConc")
	}
	ended := make(chan bool, len(distances))
	for i, r := range distances {
		go func(i int, r float64) {
			S.Energies[i] = Potential(P.Epsilon, P.Sigma, r)
			ended <- true
		}(i, r)
	}
	for range distances {
		<-ended
	}
	return S, nil
}

//newScan validates all the distances before anything is evaluated, and
//allocates the Scan.
func (P *Pair) newScan(distances []float64) (*Scan, error) {
	if len(distances) == 0 {
		return nil, NewError(EmptyInput, "newScan", true)
	}
	for _, r := range distances {
		if err := checkDistance(r, "newScan"); err != nil {
			return nil, err
		}
	}
	S := new(Scan)
	S.Pair = P
	S.Distances = append([]float64(nil), distances...)
	S.Energies = make([]float64, len(distances))
	return S, nil
}

func (S *Scan) Len() int {
	return len(S.Distances)
}

//Minimum returns the minimum energy of the scan as found by Minimum
//(i.e. it is never larger than 0).
func (S *Scan) Minimum() Min {
	e, i := Minimum(S.Energies)
	m := Min{Energy: e, Index: i}
	if e < 0 {
		m.Distance = S.Distances[i]
	}
	return m
}

//StrictMinimum returns the lowest energy actually present in the scan.
func (S *Scan) StrictMinimum() (Min, error) {
	e, i, err := StrictMinimum(S.Energies)
	if err != nil {
		return Min{Index: -1}, errDecorate(err, "Scan.StrictMinimum")
	}
	return Min{Energy: e, Index: i, Distance: S.Distances[i]}, nil
}

//Scaled returns a copy of the energies multiplied by 10^-exponent,
//e.g. in units of 1e-21 J for exponent=-21.
func (S *Scan) Scaled(exponent int) []float64 {
	ret := make([]float64, len(S.Energies))
	return floats.ScaleTo(ret, math.Pow10(-exponent), S.Energies)
}

func (S *Scan) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", S.Pair)
	for i, r := range S.Distances {
		fmt.Fprintf(&b, "%6.3f A %v J\n", r, S.Energies[i])
	}
	return b.String()
}
