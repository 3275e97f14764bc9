/*
 * conversion.go, part of ljscan.
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

//This provides the energy conversion factors

//Conversions
const (
	EV2J = 1.602176634e-19 //exact, SI 2019
	J2EV = 1 / EV2J
)

//EV2Joule returns the energy ev, given in electron-volts, in joules.
func EV2Joule(ev float64) float64 {
	return ev * EV2J
}

//Joule2EV returns the energy j, given in joules, in electron-volts.
func Joule2EV(j float64) float64 {
	return j / EV2J
}
