/*
 * doc.go, part of ljscan.
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

/*Package lj evaluates the Lennard-Jones potential between 2 non-bonded particles.


	**Capabilities**


    Converts energies between eV and J.

    Evaluates the Lennard-Jones potential V(r)=4e[(s/r)^12-(s/r)^6] and its force,
	with parameters as sigma/epsilon or C6/C12, and mixes parameters with the
	Lorentz-Berthelot rules.

    Scans a pair over a set of distances, sequentially or concurrently, and finds
	the lowest energy of the scan.

    Rounds and formats energies in scaled units (e.g. "-1.65e-21 J").

The subpackages write scans as compressed tables (table), JSON reports (ljjson)
and plots (ljplot). The ljscan command reproduces the argon pair scan.

*/
package lj
