package vecx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	v := New(1, 2, 3)

	assert.Equal(t, 3, v.Len())
	assert.Equal(t, []int{1, 2, 3}, v.Elements())
}

func TestFromSlice_Copies(t *testing.T) {
	src := []int{1, 2, 3}
	v := FromSlice(src)

	src[0] = 99

	assert.Equal(t, []int{1, 2, 3}, v.Elements())
}

func TestBroadcast(t *testing.T) {
	v, err := Broadcast(7, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{7, 7, 7, 7}, v.Elements())

	empty, err := Broadcast(7, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())

	_, err = Broadcast(7, -1)
	var invalid *ErrInvalidLength
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, -1, invalid.Length)
}

func TestAt(t *testing.T) {
	v := New(10, 20, 30)

	e, err := v.At(1)
	require.NoError(t, err)
	assert.Equal(t, 20, e)

	for _, i := range []int{-1, 3} {
		_, err := v.At(i)
		var oob *ErrIndexOutOfBounds
		require.ErrorAs(t, err, &oob)
		assert.Equal(t, i, oob.Index)
		assert.Equal(t, 3, oob.Length)
	}
}

func TestArithmetic(t *testing.T) {
	tests := []struct {
		name string
		op   func(a, b Vec[int]) (Vec[int], error)
		want []int
	}{
		{"Add", Vec[int].Add, []int{5, 7, 9}},
		{"Sub", Vec[int].Sub, []int{3, 3, 3}},
		{"Mul", Vec[int].Mul, []int{4, 10, 18}},
		{"Div", Vec[int].Div, []int{4, 2, 2}},
		{"Mod", Vec[int].Mod, []int{0, 1, 0}},
	}

	a := New(4, 5, 6)
	b := New(1, 2, 3)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.op(a, b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Elements())

			// Operands stay intact.
			assert.Equal(t, []int{4, 5, 6}, a.Elements())
			assert.Equal(t, []int{1, 2, 3}, b.Elements())
		})
	}
}

func TestArithmetic_LengthMismatch(t *testing.T) {
	a := New(1, 2, 3)
	b := New(1, 2)

	for name, op := range map[string]func(a, b Vec[int]) (Vec[int], error){
		"Add": Vec[int].Add,
		"Sub": Vec[int].Sub,
		"Mul": Vec[int].Mul,
		"Div": Vec[int].Div,
		"Mod": Vec[int].Mod,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := op(a, b)
			var mismatch *ErrLengthMismatch
			require.ErrorAs(t, err, &mismatch)
			assert.Equal(t, 3, mismatch.Expected)
			assert.Equal(t, 2, mismatch.Actual)
		})
	}
}

func TestDiv_IntegerZeroDivisor(t *testing.T) {
	a := New(4, 5, 6)
	b := New(1, 0, 3)

	_, err := a.Div(b)
	var dbz *ErrDivisionByZero
	require.ErrorAs(t, err, &dbz)
	assert.Equal(t, 1, dbz.Position)

	_, err = a.Mod(b)
	require.ErrorAs(t, err, &dbz)
	assert.Equal(t, 1, dbz.Position)
}

func TestDiv_FloatFollowsIEEE(t *testing.T) {
	a := New(1.0, -1.0, 0.0)
	b := New(0.0, 0.0, 0.0)

	got, err := a.Div(b)
	require.NoError(t, err)

	elems := got.Elements()
	assert.True(t, math.IsInf(elems[0], 1))
	assert.True(t, math.IsInf(elems[1], -1))
	assert.True(t, math.IsNaN(elems[2]))
}

func TestMod_Float(t *testing.T) {
	a := New(5.5, 7.0)
	b := New(2.0, 3.5)

	got, err := a.Mod(b)
	require.NoError(t, err)
	assert.InDelta(t, math.Mod(5.5, 2.0), got.Elements()[0], 1e-12)
	assert.InDelta(t, math.Mod(7.0, 3.5), got.Elements()[1], 1e-12)

	nan, err := a.Mod(New(0.0, 1.0))
	require.NoError(t, err)
	assert.True(t, math.IsNaN(nan.Elements()[0]))
}

func TestScalarArithmetic(t *testing.T) {
	a := New(1, 2, 3)

	assert.Equal(t, []int{2, 3, 4}, a.AddScalar(1).Elements())
	assert.Equal(t, []int{0, 1, 2}, a.SubScalar(1).Elements())
	assert.Equal(t, []int{2, 4, 6}, a.MulScalar(2).Elements())

	div, err := a.DivScalar(2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 1}, div.Elements())

	mod, err := a.ModScalar(2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 1}, mod.Elements())

	// Broadcast matches per-element combination.
	for i := range a.Elements() {
		e, _ := a.At(i)
		s, _ := a.AddScalar(10).At(i)
		assert.Equal(t, e+10, s)
	}
}

func TestScalarDiv_ZeroDivisor(t *testing.T) {
	a := New(1, 2, 3)

	_, err := a.DivScalar(0)
	var dbz *ErrDivisionByZero
	require.ErrorAs(t, err, &dbz)
	assert.Equal(t, -1, dbz.Position)

	_, err = a.ModScalar(0)
	require.ErrorAs(t, err, &dbz)

	// Float scalar division by zero is IEEE, not an error.
	f := New(1.0, 2.0)
	got, err := f.DivScalar(0)
	require.NoError(t, err)
	assert.True(t, math.IsInf(got.Elements()[0], 1))
}

func TestAssignVariants_AgreeWithValueForms(t *testing.T) {
	a := New(4, 5, 6)
	b := New(1, 2, 3)

	tests := []struct {
		name   string
		value  func() (Vec[int], error)
		assign func(v *Vec[int]) error
	}{
		{"Add", func() (Vec[int], error) { return a.Add(b) }, func(v *Vec[int]) error { return v.AddAssign(b) }},
		{"Sub", func() (Vec[int], error) { return a.Sub(b) }, func(v *Vec[int]) error { return v.SubAssign(b) }},
		{"Mul", func() (Vec[int], error) { return a.Mul(b) }, func(v *Vec[int]) error { return v.MulAssign(b) }},
		{"Div", func() (Vec[int], error) { return a.Div(b) }, func(v *Vec[int]) error { return v.DivAssign(b) }},
		{"Mod", func() (Vec[int], error) { return a.Mod(b) }, func(v *Vec[int]) error { return v.ModAssign(b) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want, err := tt.value()
			require.NoError(t, err)

			c := a.Clone()
			require.NoError(t, tt.assign(&c))
			assert.True(t, c.Equal(want))

			// The original is untouched thanks to Clone.
			assert.Equal(t, []int{4, 5, 6}, a.Elements())
		})
	}
}

func TestScalarAssignVariants(t *testing.T) {
	a := New(1, 2, 3)

	c := a.Clone()
	c.AddScalarAssign(1)
	assert.True(t, c.Equal(a.AddScalar(1)))

	c = a.Clone()
	c.SubScalarAssign(1)
	assert.True(t, c.Equal(a.SubScalar(1)))

	c = a.Clone()
	c.MulScalarAssign(2)
	assert.True(t, c.Equal(a.MulScalar(2)))

	c = a.Clone()
	require.NoError(t, c.DivScalarAssign(2))
	want, _ := a.DivScalar(2)
	assert.True(t, c.Equal(want))

	c = a.Clone()
	require.NoError(t, c.ModScalarAssign(2))
	want, _ = a.ModScalar(2)
	assert.True(t, c.Equal(want))
}

func TestAssign_ReceiverUnchangedOnError(t *testing.T) {
	a := New(4, 5, 6)

	c := a.Clone()
	err := c.DivAssign(New(1, 0, 3))
	require.Error(t, err)
	assert.Equal(t, []int{4, 5, 6}, c.Elements())

	c = a.Clone()
	err = c.AddAssign(New(1, 2))
	require.Error(t, err)
	assert.Equal(t, []int{4, 5, 6}, c.Elements())

	c = a.Clone()
	err = c.DivScalarAssign(0)
	require.Error(t, err)
	assert.Equal(t, []int{4, 5, 6}, c.Elements())
}

func TestEqual(t *testing.T) {
	a := New(1, 2, 3)
	b := New(1, 2, 3)
	c := New(1, 2, 4)

	assert.True(t, a.Equal(a))
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(New(1, 2)))
}

func TestCompare_Lexicographic(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec[int]
		want int
	}{
		{"decided at position 2", New(1, 2, 3), New(1, 2, 2), 1},
		{"decided at position 0", New(1, 2, 3), New(4, 5, 6), -1},
		{"equal", New(1, 2, 3), New(1, 2, 3), 0},
		{"prefix orders first", New(1, 2), New(1, 2, 3), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Compare(tt.b))
			assert.Equal(t, -tt.want, tt.b.Compare(tt.a))
		})
	}
}

func TestOrderingPredicates(t *testing.T) {
	lo := New(1, 2, 2)
	hi := New(1, 2, 3)

	assert.True(t, lo.Less(hi))
	assert.True(t, lo.LessOrEqual(hi))
	assert.True(t, hi.Greater(lo))
	assert.True(t, hi.GreaterOrEqual(lo))
	assert.True(t, hi.LessOrEqual(hi))
	assert.True(t, hi.GreaterOrEqual(hi))
	assert.False(t, hi.Less(lo))
}

func TestConvert(t *testing.T) {
	v := New[uint8](255, 0, 7)

	wide := Convert[int32](v)
	assert.Equal(t, []int32{255, 0, 7}, wide.Elements())

	// Lossless round-trip through the wider type.
	back := Convert[uint8](wide)
	assert.True(t, v.Equal(back))

	// Float to int truncates.
	f := New(1.9, -1.9)
	assert.Equal(t, []int{1, -1}, Convert[int](f).Elements())
}

func TestString(t *testing.T) {
	assert.Equal(t, "[1 2 3]", New(1, 2, 3).String())
}

func BenchmarkAdd(b *testing.B) {
	x := New(1, 2, 3, 4, 5, 6, 7, 8)
	y := New(8, 7, 6, 5, 4, 3, 2, 1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = x.Add(y)
	}
}

func BenchmarkAddAssign(b *testing.B) {
	x := New(1, 2, 3, 4, 5, 6, 7, 8)
	y := New(8, 7, 6, 5, 4, 3, 2, 1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = x.AddAssign(y)
	}
}
