/*
 * minimum.go, part of ljscan.
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

import "gonum.org/v1/gonum/floats"

//Minimum returns the smallest value in values and its index, scanning from a
//candidate of 0 at index 0. The candidate is only replaced by a strictly smaller
//value, so if no value is negative, Minimum returns (0, 0) even when 0 is not
//in values. For a plain minimum use StrictMinimum.
func Minimum(values []float64) (float64, int) {
	var min float64
	var index int
	for i, v := range values {
		if v < min {
			min = v
			index = i
		}
	}
	return min, index
}

//StrictMinimum returns the smallest value in values and the index of its first occurrence.
//It returns an error if values is empty.
func StrictMinimum(values []float64) (float64, int, error) {
	if len(values) == 0 {
		return 0, -1, NewError(EmptyInput, "StrictMinimum", false)
	}
	i := floats.MinIdx(values)
	return values[i], i, nil
}
