package models

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/answerking/answerking-api/pkg/apperr"
	"github.com/answerking/answerking-api/services/order/domain"
)

var (
	burger = MenuItem{ID: 1, Name: "Burger", Price: decimal.RequireFromString("1.20")}
	coke   = MenuItem{ID: 2, Name: "Coke", Price: decimal.RequireFromString("1.50")}
	fries  = MenuItem{ID: 3, Name: "Fries", Price: decimal.RequireFromString("0.335")}
)

func newTestOrder(t *testing.T) *Order {
	t.Helper()
	addr, err := NewAddress("1 Main Street")
	require.NoError(t, err)
	return NewOrder(addr)
}

// assertTotalInvariant checks total == round(sum(sub_total), 2) and sub_total == price × quantity.
func assertTotalInvariant(t *testing.T, o *Order) {
	t.Helper()
	sum := decimal.Zero
	for _, l := range o.Lines {
		assert.Greater(t, l.Quantity, 0)
		want := l.Price.Mul(decimal.NewFromInt(int64(l.Quantity))).Round(2)
		assert.True(t, want.Equal(l.SubTotal), "sub_total %s != %s", l.SubTotal, want)
		sum = sum.Add(l.SubTotal)
	}
	assert.True(t, sum.Round(2).Equal(o.Total), "total %s != %s", o.Total, sum.Round(2))
}

func TestNewOrder(t *testing.T) {
	o := newTestOrder(t)

	assert.Equal(t, StatusPending, o.Status)
	assert.Equal(t, "0.00", o.Total.StringFixed(2))
	assert.Empty(t, o.Lines)
	assert.False(t, o.CreatedAt.IsZero())
}

func TestOrder_SingleLineTotal(t *testing.T) {
	o := newTestOrder(t)

	require.NoError(t, o.SetLine(burger, 2))

	assert.Equal(t, "2.40", o.Total.StringFixed(2))
	assertTotalInvariant(t, o)
}

func TestOrder_TwoLineTotal(t *testing.T) {
	o := newTestOrder(t)

	require.NoError(t, o.SetLine(burger, 2))
	require.NoError(t, o.SetLine(coke, 1))

	assert.Equal(t, "5.10", o.Total.StringFixed(2))
	assertTotalInvariant(t, o)
}

func TestOrder_SetLineReplacesQuantity(t *testing.T) {
	o := newTestOrder(t)
	require.NoError(t, o.SetLine(burger, 2))
	require.NoError(t, o.SetLine(coke, 1))

	require.NoError(t, o.SetLine(burger, 5))

	require.Len(t, o.Lines, 2)
	assert.Equal(t, int64(1), o.Lines[0].ItemID, "replacing must keep insertion order")
	assert.Equal(t, 5, o.Lines[0].Quantity)
	assert.Equal(t, "7.50", o.Total.StringFixed(2))
	assertTotalInvariant(t, o)
}

func TestOrder_AddLineMergesQuantity(t *testing.T) {
	o := newTestOrder(t)

	require.NoError(t, o.AddLine(burger, 1))
	require.NoError(t, o.AddLine(burger, 2))

	require.Len(t, o.Lines, 1)
	assert.Equal(t, 3, o.Lines[0].Quantity)
	assert.Equal(t, "3.60", o.Total.StringFixed(2))
}

func TestOrder_RejectsNonPositiveQuantity(t *testing.T) {
	for _, q := range []int{0, -1} {
		o := newTestOrder(t)
		require.NoError(t, o.SetLine(burger, 2))
		require.NoError(t, o.SetLine(coke, 1))
		before := o.Total

		err := o.SetLine(coke, q)

		require.ErrorIs(t, err, domain.ErrInvalidQuantity)
		assert.True(t, apperr.IsValidation(err))
		assert.True(t, before.Equal(o.Total), "total must be unchanged")
		line, ok := o.Line(coke.ID)
		require.True(t, ok, "a rejected update must not delete the line")
		assert.Equal(t, 1, line.Quantity)

		assert.ErrorIs(t, o.AddLine(fries, q), domain.ErrInvalidQuantity)
		assert.Len(t, o.Lines, 2)
	}
}

func TestOrder_BoundsQuantityAndAmounts(t *testing.T) {
	mint := MenuItem{ID: 4, Name: "Mint", Price: decimal.RequireFromString("0.01")}
	gold := MenuItem{ID: 5, Name: "Gold Burger", Price: decimal.NewFromInt(math.MaxInt32)}
	silver := MenuItem{ID: 6, Name: "Silver Burger", Price: decimal.NewFromInt(math.MaxInt32)}

	t.Run("merge over int32 is rejected", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.AddLine(mint, math.MaxInt32))

		err := o.AddLine(mint, 1)

		require.ErrorIs(t, err, domain.ErrInvalidQuantity)
		assert.Equal(t, math.MaxInt32, o.Lines[0].Quantity)
		assertTotalInvariant(t, o)
	})

	t.Run("set over int32 is rejected", func(t *testing.T) {
		o := newTestOrder(t)
		assert.ErrorIs(t, o.SetLine(mint, math.MaxInt32+1), domain.ErrInvalidQuantity)
		assert.Empty(t, o.Lines)
	})

	t.Run("sub_total over numeric limit", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.SetLine(burger, 1))

		err := o.SetLine(gold, math.MaxInt32)

		require.ErrorIs(t, err, domain.ErrAmountTooLarge)
		assert.True(t, apperr.IsValidation(err))
		assert.Len(t, o.Lines, 1)
		assert.Equal(t, "1.20", o.Total.StringFixed(2))
	})

	t.Run("total over numeric limit leaves the line as it was", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.SetLine(gold, 4000000))
		require.NoError(t, o.SetLine(silver, 1))

		err := o.SetLine(silver, 4000000)

		require.ErrorIs(t, err, domain.ErrAmountTooLarge)
		line, ok := o.Line(silver.ID)
		require.True(t, ok)
		assert.Equal(t, 1, line.Quantity)
		assertTotalInvariant(t, o)
	})
}

func TestOrder_RemoveLineIsIdempotent(t *testing.T) {
	o := newTestOrder(t)
	require.NoError(t, o.SetLine(burger, 2))
	require.NoError(t, o.SetLine(coke, 1))

	assert.True(t, o.RemoveLine(coke.ID))
	afterFirst := o.Total
	linesAfterFirst := len(o.Lines)

	assert.False(t, o.RemoveLine(coke.ID))

	assert.True(t, afterFirst.Equal(o.Total))
	assert.Len(t, o.Lines, linesAfterFirst)
	assert.Equal(t, "2.40", o.Total.StringFixed(2))
	assertTotalInvariant(t, o)
}

func TestOrder_RemoveLastLineZeroesTotal(t *testing.T) {
	o := newTestOrder(t)
	require.NoError(t, o.SetLine(burger, 2))

	o.RemoveLine(burger.ID)

	assert.Empty(t, o.Lines)
	assert.Equal(t, "0.00", o.Total.StringFixed(2))
}

func TestOrder_Reprice(t *testing.T) {
	o := newTestOrder(t)
	require.NoError(t, o.SetLine(burger, 2))
	require.NoError(t, o.SetLine(coke, 1))

	assert.True(t, o.Reprice(burger.ID, decimal.RequireFromString("2.00")))
	assert.False(t, o.Reprice(99, decimal.RequireFromString("9.99")))

	assert.Equal(t, "4.00", o.Lines[0].SubTotal.StringFixed(2))
	assert.Equal(t, "5.50", o.Total.StringFixed(2))
	assertTotalInvariant(t, o)
}

func TestOrder_Rounding(t *testing.T) {
	o := newTestOrder(t)

	// 0.335 × 1 rounds half away from zero to 0.34.
	require.NoError(t, o.SetLine(fries, 1))

	assert.Equal(t, "0.34", o.Lines[0].SubTotal.StringFixed(2))
	assert.Equal(t, "0.34", o.Total.StringFixed(2))
}

func TestOrder_Apply(t *testing.T) {
	ptr := func(s string) *string { return &s }

	t.Run("status only", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Apply(Changes{Status: ptr("Completed")}))
		assert.Equal(t, StatusCompleted, o.Status)
		assert.Equal(t, Address("1 Main Street"), o.Address)
	})

	t.Run("address only is compressed", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Apply(Changes{Address: ptr("  2   High  Road ")}))
		assert.Equal(t, Address("2 High Road"), o.Address)
		assert.Equal(t, StatusPending, o.Status)
	})

	t.Run("unknown status rejects whole update", func(t *testing.T) {
		o := newTestOrder(t)
		err := o.Apply(Changes{Address: ptr("2 High Road"), Status: ptr("Unknown")})
		require.ErrorIs(t, err, domain.ErrInvalidStatus)
		assert.True(t, apperr.IsValidation(err))
		assert.Equal(t, StatusPending, o.Status)
		assert.Equal(t, Address("1 Main Street"), o.Address)
	})

	t.Run("bad address rejects whole update", func(t *testing.T) {
		o := newTestOrder(t)
		err := o.Apply(Changes{Address: ptr("test%"), Status: ptr("Cancelled")})
		require.ErrorIs(t, err, domain.ErrInvalidAddress)
		assert.Equal(t, StatusPending, o.Status)
	})

	t.Run("any status may follow any other", func(t *testing.T) {
		o := newTestOrder(t)
		for _, s := range []string{"Cancelled", "Completed", "Pending", "Cancelled"} {
			require.NoError(t, o.Apply(Changes{Status: ptr(s)}))
			assert.Equal(t, Status(s), o.Status)
		}
	})

	t.Run("empty changes are a no-op", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Apply(Changes{}))
		assert.Equal(t, StatusPending, o.Status)
	})
}

func TestRecomputeTotal_Pure(t *testing.T) {
	lines := []*OrderLine{
		{SubTotal: decimal.RequireFromString("2.40")},
		{SubTotal: decimal.RequireFromString("1.50")},
		{SubTotal: decimal.RequireFromString("1.20")},
	}
	assert.Equal(t, "5.10", RecomputeTotal(lines).StringFixed(2))
	assert.Equal(t, "2.40", lines[0].SubTotal.StringFixed(2), "inputs must not be modified")
	assert.True(t, RecomputeTotal(nil).IsZero())
}
