package magnitude

import (
	"fmt"
	"math/big"
	"math/rand"
	"strings"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	type TC struct {
		a, b string
		sum  string
		mark error
	}

	tcs := []TC{
		{a: "0", b: "0", sum: "0", mark: oops.New("unexpected")},
		{a: "0", b: "5", sum: "5", mark: oops.New("unexpected")},
		{a: "999", b: "1", sum: "1000", mark: oops.New("unexpected")},
		{a: "1", b: "999", sum: "1000", mark: oops.New("unexpected")},
		{a: "123", b: "877", sum: "1000", mark: oops.New("unexpected")},
		{a: "99999999999999999999", b: "1", sum: "100000000000000000000", mark: oops.New("unexpected")},
		{a: "18446744073709551615", b: "18446744073709551615", sum: "36893488147419103230", mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s+%s", i, tc.a, tc.b), func(t *testing.T) {
			require.Equal(t, tc.sum, Add(tc.a, tc.b), tc.mark)
			require.Equal(t, tc.sum, Add(tc.b, tc.a), tc.mark)
		})
	}
}

func TestSub(t *testing.T) {
	type TC struct {
		a, b string
		diff string
		mark error
	}

	tcs := []TC{
		{a: "0", b: "0", diff: "0", mark: oops.New("unexpected")},
		{a: "5", b: "0", diff: "5", mark: oops.New("unexpected")},
		{a: "1000", b: "999", diff: "1", mark: oops.New("unexpected")},
		{a: "500", b: "1", diff: "499", mark: oops.New("unexpected")},
		{a: "500", b: "499", diff: "1", mark: oops.New("unexpected")},
		{a: "123456", b: "123456", diff: "0", mark: oops.New("unexpected")},
		{a: "100000000000000000000", b: "1", diff: "99999999999999999999", mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s-%s", i, tc.a, tc.b), func(t *testing.T) {
			diff, err := Sub(tc.a, tc.b)
			require.NoError(t, err, tc.mark)
			require.Equal(t, tc.diff, diff, tc.mark)
		})
	}

	t.Run("negative", func(t *testing.T) {
		_, err := Sub("999", "1000")
		require.Error(t, err)
		require.True(t, ErrInvalidOperand.Has(err))
	})
}

func TestMul(t *testing.T) {
	type TC struct {
		a, b    string
		product string
		mark    error
	}

	tcs := []TC{
		{a: "0", b: "0", product: "0", mark: oops.New("unexpected")},
		{a: "0", b: "123", product: "0", mark: oops.New("unexpected")},
		{a: "1", b: "123", product: "123", mark: oops.New("unexpected")},
		{a: "123", b: "456", product: "56088", mark: oops.New("unexpected")},
		{a: "1000", b: "1000", product: "1000000", mark: oops.New("unexpected")},
		{a: "101", b: "99", product: "9999", mark: oops.New("unexpected")},
		{a: "99999999999", b: "99999999999", product: "9999999999800000000001", mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s*%s", i, tc.a, tc.b), func(t *testing.T) {
			require.Equal(t, tc.product, Mul(tc.a, tc.b), tc.mark)
			require.Equal(t, tc.product, Mul(tc.b, tc.a), tc.mark)
		})
	}
}

func TestQuoRem(t *testing.T) {
	type TC struct {
		a, b string
		q, r string
		mark error
	}

	tcs := []TC{
		{a: "0", b: "7", q: "0", r: "0", mark: oops.New("unexpected")},
		{a: "5", b: "7", q: "0", r: "5", mark: oops.New("unexpected")},
		{a: "7", b: "7", q: "1", r: "0", mark: oops.New("unexpected")},
		{a: "100", b: "7", q: "14", r: "2", mark: oops.New("unexpected")},
		{a: "1000", b: "10", q: "100", r: "0", mark: oops.New("unexpected")},
		{a: "1001", b: "1000", q: "1", r: "1", mark: oops.New("unexpected")},
		{a: "56088", b: "456", q: "123", r: "0", mark: oops.New("unexpected")},
		{a: "99999999999999999999", b: "3", q: "33333333333333333333", r: "0", mark: oops.New("unexpected")},
		{a: "123456789012345678901234567890", b: "987654321", q: "124999998873437499901", r: "574845669", mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s/%s", i, tc.a, tc.b), func(t *testing.T) {
			q, r, err := QuoRem(tc.a, tc.b)
			require.NoError(t, err, tc.mark)
			require.Equal(t, tc.q, q, tc.mark)
			require.Equal(t, tc.r, r, tc.mark)

			q, err = Quo(tc.a, tc.b)
			require.NoError(t, err, tc.mark)
			require.Equal(t, tc.q, q, tc.mark)

			r, err = Rem(tc.a, tc.b)
			require.NoError(t, err, tc.mark)
			require.Equal(t, tc.r, r, tc.mark)
		})
	}

	t.Run("zero", func(t *testing.T) {
		_, _, err := QuoRem("5", "0")
		require.True(t, ErrDivisionByZero.Has(err))

		_, err = Quo("0", "0")
		require.True(t, ErrDivisionByZero.Has(err))

		_, err = Rem("5", "0")
		require.True(t, ErrDivisionByZero.Has(err))
	})
}

// randomMagnitude returns a magnitude of up to n digits.
func randomMagnitude(rnd *rand.Rand, n int) string {
	var sb strings.Builder

	size := 1 + rnd.Intn(n)
	for i := 0; i < size; i++ {
		sb.WriteByte(byte('0' + rnd.Intn(10)))
	}

	return Strip(sb.String())
}

func bigOf(t *testing.T, s string) *big.Int {
	t.Helper()

	i, ok := new(big.Int).SetString(s, 10)
	require.True(t, ok, s)

	return i
}

func TestArithOracle(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))

	for i := 0; i < 500; i++ {
		a := randomMagnitude(rnd, 40)
		b := randomMagnitude(rnd, 25)

		ba, bb := bigOf(t, a), bigOf(t, b)

		require.Equal(t, new(big.Int).Add(ba, bb).String(), Add(a, b), "%s + %s", a, b)
		require.Equal(t, new(big.Int).Mul(ba, bb).String(), Mul(a, b), "%s * %s", a, b)
		require.Equal(t, ba.Cmp(bb), Compare(a, b), "%s ? %s", a, b)

		if ba.Cmp(bb) >= 0 {
			diff, err := Sub(a, b)
			require.NoError(t, err)
			require.Equal(t, new(big.Int).Sub(ba, bb).String(), diff, "%s - %s", a, b)
		}

		if !IsZero(b) {
			q, r, err := QuoRem(a, b)
			require.NoError(t, err)

			bq, br := new(big.Int).QuoRem(ba, bb, new(big.Int))
			require.Equal(t, bq.String(), q, "%s / %s", a, b)
			require.Equal(t, br.String(), r, "%s %% %s", a, b)
		}
	}
}

var benchResult string

func BenchmarkAdd(b *testing.B) {
	rnd := rand.New(rand.NewSource(1))
	x, y := randomMagnitude(rnd, 200), randomMagnitude(rnd, 200)

	for i := 0; i < b.N; i++ {
		benchResult = Add(x, y)
	}
}

func BenchmarkMul(b *testing.B) {
	rnd := rand.New(rand.NewSource(1))
	x, y := randomMagnitude(rnd, 200), randomMagnitude(rnd, 200)

	for i := 0; i < b.N; i++ {
		benchResult = Mul(x, y)
	}
}

func BenchmarkQuoRem(b *testing.B) {
	rnd := rand.New(rand.NewSource(1))
	x, y := randomMagnitude(rnd, 200), randomMagnitude(rnd, 50)
	if IsZero(y) {
		y = One
	}

	for i := 0; i < b.N; i++ {
		benchResult, _, _ = QuoRem(x, y)
	}
}
