/*
 * potential.go, part of ljscan.
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
)

//Potential returns the Lennard-Jones energy 4*epsilon*((sigma/r)^12-(sigma/r)^6)
//for 2 particles separated by r. The energy has the units of epsilon, and sigma and r
//must share length units. r is not checked: r=0 gives NaN.
func Potential(epsilon, sigma, r float64) float64 {
	sr := sigma / r
	return 4 * epsilon * (math.Pow(sr, 12) - math.Pow(sr, 6))
}

//Pair contains the Lennard-Jones parameters for a pair of particles.
//Epsilon is in J, Sigma in A.
type Pair struct {
	Epsilon float64
	Sigma   float64
}

//NewPair returns a Pair with well depth epsilon (J) and zero-crossing distance sigma (A).
func NewPair(epsilon, sigma float64) *Pair {
	return &Pair{Epsilon: epsilon, Sigma: sigma}
}

//NewPairEV is like NewPair, but epsilon is given in eV.
func NewPairEV(epsilonEV, sigma float64) *Pair {
	return NewPair(EV2Joule(epsilonEV), sigma)
}

func (P *Pair) String() string {
	return fmt.Sprintf("epsilon: %g J (%g eV) sigma: %g A", P.Epsilon, Joule2EV(P.Epsilon), P.Sigma)
}

//checkDistance returns an error if r can't be used as a separation.
func checkDistance(r float64, caller string) error {
	if math.IsNaN(r) || math.IsInf(r, 0) || r <= 0 {
		return invalidf(caller, "distance must be a positive finite number, got %g", r)
	}
	return nil
}

//Energy returns the Lennard-Jones energy, in J, of the pair at a separation r (A).
//Unlike Potential, it returns an error for non-positive or non-finite r.
func (P *Pair) Energy(r float64) (float64, error) {
	if err := checkDistance(r, "Energy"); err != nil {
		return 0, err
	}
	return Potential(P.Epsilon, P.Sigma, r), nil
}

//Force returns -dV/dr for the pair at a separation r, in J/A.
//Positive values are repulsive.
func (P *Pair) Force(r float64) (float64, error) {
	if err := checkDistance(r, "Force"); err != nil {
		return 0, err
	}
	sr := P.Sigma / r
	return 24 * P.Epsilon * (2*math.Pow(sr, 12) - math.Pow(sr, 6)) / r, nil
}

//RMin returns the separation at the bottom of the well, 2^(1/6)*sigma.
//The energy there is -epsilon.
func (P *Pair) RMin() float64 {
	return math.Pow(2, 1.0/6.0) * P.Sigma
}

//C6C12 returns the pair parameters in the C6/C12 form used by GROMACS,
//V(r)=C12/r^12-C6/r^6. Units follow those of the pair.
func (P *Pair) C6C12() (c6 float64, c12 float64) {
	return 4 * P.Epsilon * math.Pow(P.Sigma, 6), 4 * P.Epsilon * math.Pow(P.Sigma, 12)
}

//PairFromC6C12 builds a Pair from C6/C12 parameters. Both have to be positive.
func PairFromC6C12(c6, c12 float64) (*Pair, error) {
	if c6 <= 0 || c12 <= 0 {
		return nil, invalidf("PairFromC6C12", "c6 and c12 must be positive, got %g, %g", c6, c12)
	}
	sigma := math.Pow(c12/c6, 1.0/6.0)
	epsilon := c6 * c6 / (4 * c12)
	return NewPair(epsilon, sigma), nil
}

//Mix returns the parameters for the interaction between 2 different particles, with the Lorentz-Berthelot
//rules: the geometric mean of the epsilons and the arithmetic mean of the sigmas.
func Mix(a, b *Pair) *Pair {
	return NewPair(math.Sqrt(a.Epsilon*b.Epsilon), 0.5*(a.Sigma+b.Sigma))
}
