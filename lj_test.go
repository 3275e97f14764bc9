package lj

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
)

//reference energies for the argon pair at ArgonDistances, in J
var argonRef = []float64{
	1.5653523415738785e-20,
	0.0,
	-1.6491152810326125e-21,
	-1.3349087048372307e-21,
	-9.00808599371665e-22,
	-5.880980609909882e-22,
}

//math.Pow and the C library pow differ in the last bits, so the reference
//energies are matched to a few ULP.
const refTol = 4e-15

func TestConversion(Te *testing.T) {
	assert.Equal(Te, 1.602176634e-19, EV2Joule(1.0))
	assert.Equal(Te, 0.0, EV2Joule(0))
	assert.InEpsilon(Te, 0.0103, Joule2EV(EV2Joule(0.0103)), 1e-15)
	assert.InEpsilon(Te, 1.0, EV2J*J2EV, 1e-15)
}

func TestPotentialAtSigma(Te *testing.T) {
	for _, e := range []float64{1, 0.5e-21, EV2Joule(ArgonEpsilonEV)} {
		assert.Equal(Te, 0.0, Potential(e, ArgonSigma, ArgonSigma))
	}
}

func TestPotentialScaleInvariance(Te *testing.T) {
	e := EV2Joule(ArgonEpsilonEV)
	for _, r := range ArgonDistances() {
		assert.Equal(Te, Potential(e, ArgonSigma, r), Potential(e, 2*ArgonSigma, 2*r))
		assert.InDelta(Te, Potential(e, ArgonSigma, r), Potential(e, 1.7*ArgonSigma, 1.7*r), 1e-33)
		assert.InDelta(Te, Potential(e, ArgonSigma, r), Potential(e, 0.3*ArgonSigma, 0.3*r), 1e-33)
	}
}

func TestPotentialZeroDistance(Te *testing.T) {
	//Inf-Inf
	assert.True(Te, math.IsNaN(Potential(1, ArgonSigma, 0)))
}

func TestArgonScan(Te *testing.T) {
	P := Argon()
	S, err := P.Scan(ArgonDistances())
	require.NoError(Te, err)
	require.Equal(Te, len(argonRef), S.Len())
	for i, v := range argonRef {
		if v == 0 {
			assert.Equal(Te, 0.0, S.Energies[i], "distance %g", S.Distances[i])
			continue
		}
		assert.InEpsilon(Te, v, S.Energies[i], refTol, "distance %g", S.Distances[i])
	}
	m := S.Minimum()
	assert.Equal(Te, 2, m.Index)
	assert.Equal(Te, 3.8, m.Distance)
	assert.InEpsilon(Te, -1.6491152810326125e-21, m.Energy, refTol)
	assert.Equal(Te, "-1.65e-21 J", FormatEnergy(m.Energy))
	fmt.Print(S)
}

func TestScanConc(Te *testing.T) {
	P := Argon()
	d, err := Grid(3, 8, 200)
	require.NoError(Te, err)
	S, err := P.Scan(d)
	require.NoError(Te, err)
	C, err := P.ScanConc(d)
	require.NoError(Te, err)
	assert.Equal(Te, S.Energies, C.Energies)
	assert.Equal(Te, S.Distances, C.Distances)
}

func TestScanErrors(Te *testing.T) {
	P := Argon()
	for _, d := range [][]float64{nil, {3.0, 0}, {-1}, {math.NaN()}, {math.Inf(1)}} {
		_, err := P.Scan(d)
		require.Error(Te, err, "distances %v", d)
		_, err = P.ScanConc(d)
		require.Error(Te, err, "distances %v", d)
		e, ok := err.(Error)
		require.True(Te, ok)
		assert.Contains(Te, e.Decorate(""), "ScanConc")
	}
}

func TestEnergyErrors(Te *testing.T) {
	P := Argon()
	_, err := P.Energy(0)
	require.Error(Te, err)
	assert.Contains(Te, err.Error(), InvalidArgument)
	_, err = P.Force(-3)
	require.Error(Te, err)
	e, err := P.Energy(3.8)
	require.NoError(Te, err)
	assert.InEpsilon(Te, -1.6491152810326125e-21, e, refTol)
}

func TestForce(Te *testing.T) {
	P := Argon()
	v := func(r float64) float64 { return Potential(P.Epsilon, P.Sigma, r) }
	for _, r := range []float64{3.2, 3.6, 4.4, 5.0, 7.0} {
		f, err := P.Force(r)
		require.NoError(Te, err)
		num := fd.Derivative(v, r, &fd.Settings{Formula: fd.Central})
		assert.InEpsilon(Te, -num, f, 1e-5, "r=%g", r)
	}
	f, err := P.Force(P.RMin())
	require.NoError(Te, err)
	assert.InDelta(Te, 0, f, 1e-35)
	e, _ := P.Energy(P.RMin())
	assert.InEpsilon(Te, -P.Epsilon, e, 1e-12)
}

func TestC6C12(Te *testing.T) {
	P := Argon()
	c6, c12 := P.C6C12()
	Q, err := PairFromC6C12(c6, c12)
	require.NoError(Te, err)
	assert.InEpsilon(Te, P.Sigma, Q.Sigma, 1e-12)
	assert.InEpsilon(Te, P.Epsilon, Q.Epsilon, 1e-12)
	r := 4.1
	assert.InEpsilon(Te, c12/math.Pow(r, 12)-c6/math.Pow(r, 6), Potential(P.Epsilon, P.Sigma, r), 1e-12)
	_, err = PairFromC6C12(0, c12)
	assert.Error(Te, err)
}

func TestMix(Te *testing.T) {
	a := NewPair(1, 3)
	b := NewPair(4, 4)
	m := Mix(a, b)
	assert.Equal(Te, 2.0, m.Epsilon)
	assert.Equal(Te, 3.5, m.Sigma)
	self := Mix(Argon(), Argon())
	assert.InEpsilon(Te, Argon().Epsilon, self.Epsilon, 1e-15)
	assert.Equal(Te, Argon().Sigma, self.Sigma)
}

func TestMinimum(Te *testing.T) {
	v, i := Minimum(argonRef)
	assert.Equal(Te, -1.6491152810326125e-21, v)
	assert.Equal(Te, 2, i)
	//all positive values: the scan never leaves its starting candidate.
	v, i = Minimum([]float64{3, 1, 2})
	assert.Equal(Te, 0.0, v)
	assert.Equal(Te, 0, i)
	v, i = Minimum(nil)
	assert.Equal(Te, 0.0, v)
	assert.Equal(Te, 0, i)
	//first occurrence wins
	v, i = Minimum([]float64{1, -2, 0, -2})
	assert.Equal(Te, -2.0, v)
	assert.Equal(Te, 1, i)
}

func TestStrictMinimum(Te *testing.T) {
	v, i, err := StrictMinimum([]float64{3, 1, 2, 1})
	require.NoError(Te, err)
	assert.Equal(Te, 1.0, v)
	assert.Equal(Te, 1, i)
	_, _, err = StrictMinimum(nil)
	assert.Error(Te, err)

	S, err := NewPair(1, 1).Scan([]float64{0.9, 1.0})
	require.NoError(Te, err)
	m := S.Minimum()
	assert.Equal(Te, Min{Energy: 0, Index: 0, Distance: 0}, m)
	sm, err := S.StrictMinimum()
	require.NoError(Te, err)
	assert.Equal(Te, 1, sm.Index)
	assert.Equal(Te, 1.0, sm.Distance)
}

func TestRound(Te *testing.T) {
	assert.Equal(Te, -1.65, Round(-1.6491152810326125, 2))
	assert.Equal(Te, 0.12, Round(0.125, 2)) //exact tie, to even
	assert.Equal(Te, 0.38, Round(0.375, 2))
	assert.Equal(Te, 2.67, Round(2.675, 2)) //2.675 is slightly below in binary
	assert.Equal(Te, 2.0, Round(2.5, 0))
	assert.Equal(Te, 4.0, Round(3.5, 0))
	assert.True(Te, math.IsNaN(Round(math.NaN(), 2)))
	assert.Panics(Te, func() { Round(1, -1) })
}

func TestFormat(Te *testing.T) {
	assert.Equal(Te, "-1.65e-21 J", FormatEnergy(-1.6491152810326125e-21))
	assert.Equal(Te, "0.0e-21 J", FormatEnergy(0))
	assert.Equal(Te, "15.65e-21 J", FormatEnergy(1.5653523415738785e-20))
	assert.Equal(Te, "-0.9e-21 J", FormatEnergy(-9.00808599371665e-22))
	assert.Equal(Te, "-1.6e-21 J", FormatScaled(-1.6491152810326125e-21, -21, 1))
	assert.Equal(Te, "-16.49e-22 J", FormatScaled(-1.6491152810326125e-21, -22, 2))
	//very large and very small mantissas switch to exponent form
	assert.Equal(Te, "1e+26e-21 J", FormatEnergy(1e5))
	assert.Equal(Te, "-1.5e+16e0 J", FormatScaled(-1.5e16, 0, 2))
	assert.Equal(Te, "9999999999999998.0e0 J", FormatScaled(9999999999999998, 0, 2))
	assert.Equal(Te, "5e-05e-21 J", FormatScaled(5e-26, -21, 6))
	assert.Equal(Te, "0.0001e-21 J", FormatScaled(1e-25, -21, 6))
}

func TestGrid(Te *testing.T) {
	g, err := Grid(3, 5, 5)
	require.NoError(Te, err)
	assert.True(Te, floats.EqualApprox(g, []float64{3, 3.5, 4, 4.5, 5}, 1e-14))
	_, err = Grid(3, 5, 1)
	assert.Error(Te, err)
	_, err = Grid(5, 3, 10)
	assert.Error(Te, err)
	_, err = Grid(0, 3, 10)
	assert.Error(Te, err)
}

func TestScaled(Te *testing.T) {
	S, err := Argon().Scan(ArgonDistances())
	require.NoError(Te, err)
	sc := S.Scaled(-21)
	assert.InEpsilon(Te, -1.6491152810326125, sc[2], refTol)
	assert.InEpsilon(Te, -1.6491152810326125e-21, S.Energies[2], refTol)
}

func TestErrorDecorate(Te *testing.T) {
	err := NewError(EmptyInput, "first", false)
	assert.Equal(Te, []string{"first"}, err.Decorate(""))
	assert.Equal(Te, []string{"first", "second"}, err.Decorate("second"))
	assert.False(Te, err.Critical())
	e2 := errDecorate(fmt.Errorf("plain"), "caller")
	ce, ok := e2.(*CError)
	require.True(Te, ok)
	assert.Equal(Te, []string{"caller"}, ce.Decorate(""))
	assert.Nil(Te, errDecorate(nil, "x"))
}
