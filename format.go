/*
 * format.go, part of ljscan.
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
	"strconv"
	"strings"
)

//Round rounds x to the given number of decimal places. The rounding
//is done on the exact decimal expansion of x, with ties to even.
//It panics if places is negative.
func Round(x float64, places int) float64 {
	if places < 0 {
		panic(fmt.Sprintf("lj.Round: negative number of places %d", places))
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', places, 64), 64)
	if err != nil {
		//FormatFloat only produces parseable numbers, so the program is wrong.
		panic("lj.Round: " + err.Error())
	}
	return r
}

//shortest prints x with the fewest digits that represent it exactly. Numbers at or
//above 1e16, or below 1e-4, use exponent form ("1e+26", "5e-05"); the others keep
//a decimal point ("2.0", not "2").
func shortest(x float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	if a := math.Abs(x); a >= 1e16 || (a != 0 && a < 1e-4) {
		return strconv.FormatFloat(x, 'e', -1, 64)
	}
	s := strconv.FormatFloat(x, 'f', -1, 64)
	if strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}

//FormatScaled returns the energy v (in J) as "<m>e<exponent> J", where m is
//v*10^-exponent rounded to places decimals.
func FormatScaled(v float64, exponent, places int) string {
	m := Round(v*math.Pow10(-exponent), places)
	return fmt.Sprintf("%se%d J", shortest(m), exponent)
}

//FormatEnergy formats v in units of 1e-21 J with 2 decimals, i.e. "-1.65e-21 J".
func FormatEnergy(v float64) string {
	return FormatScaled(v, DefaultExponent, DefaultPlaces)
}

//Defaults for FormatEnergy
const (
	DefaultExponent = -21
	DefaultPlaces   = 2
)
