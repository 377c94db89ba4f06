package money_test

import (
	"errors"
	"fmt"

	"github.com/govalues/decimal"
	"github.com/hurelhuyag/money"
)

func VATAmount(priceAfterTax, taxFactor money.Amount) (money.Amount, money.Amount, error) {
	// Price
	priceBeforeTax, err := priceAfterTax.Quo(taxFactor, money.HalfEven)
	if err != nil {
		return money.Amount{}, money.Amount{}, err
	}

	// Tax Amount
	taxAmount := priceAfterTax.Sub(priceBeforeTax)

	return priceBeforeTax, taxAmount, nil
}

// In this example, the VAT amount is calculated for a product with
// a given price after tax.
func Example_vatCalculation() {
	priceAfterTax := money.MustParseAmount("10")
	taxFactor := money.MustParseAmount("1.20")

	priceBeforeTax, vatAmount, err := VATAmount(priceAfterTax, taxFactor)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Price (before tax) = %v\n", priceBeforeTax)
	fmt.Printf("VAT 20%%           = %v\n", vatAmount)
	fmt.Printf("Price (after tax)  = %v\n", priceAfterTax)

	// Output:
	// Price (before tax) = 8.33
	// VAT 20%           = 1.67
	// Price (after tax)  = 10.00
}

// In this example, a restaurant bill with a tip is split between guests
// so that the parts add up exactly to the total.
func Example_billSplitting() {
	bill := money.MustParseAmount("100")
	tip := bill.Mul(money.MustParseAmount("0.15"))
	total := bill.Add(tip)

	parts, err := total.Split(3)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Tip   = %v\n", tip)
	fmt.Printf("Total = %v\n", total)
	for i, p := range parts {
		fmt.Printf("Guest %d = %v\n", i+1, p)
	}

	// Output:
	// Tip   = 15.00
	// Total = 115.00
	// Guest 1 = 38.34
	// Guest 2 = 38.33
	// Guest 3 = 38.33
}

func ExampleParseAmount() {
	fmt.Println(money.ParseAmount("-12.3"))
	fmt.Println(money.ParseAmount("0.45"))
	// Output:
	// -12.30 <nil>
	// 0.45 <nil>
}

func ExampleParseAmount_errors() {
	_, err := money.ParseAmount("123.456")
	fmt.Println(errors.Is(err, money.ErrExcessPrecision))
	fmt.Println(err)
	_, err = money.ParseAmount(".45")
	fmt.Println(errors.Is(err, money.ErrMissingIntegerPart))
	// Output:
	// true
	// parsing amount "123.456": too many fractional digits
	// true
}

func ExampleMustParseAmount() {
	fmt.Println(money.MustParseAmount("0.5"))
	// Output: 0.50
}

func ExampleNewAmountFromMinorUnits() {
	fmt.Println(money.NewAmountFromMinorUnits(525))
	fmt.Println(money.NewAmountFromMinorUnits(-50))
	// Output:
	// 5.25
	// -0.50
}

func ExampleNewAmountFromInt64() {
	fmt.Println(money.NewAmountFromInt64(5))
	// Output: 5.00
}

func ExampleNewAmountFromFloat64() {
	fmt.Println(money.NewAmountFromFloat64(1.5))
	fmt.Println(money.NewAmountFromFloat64(0.29))
	// Output:
	// 1.50 <nil>
	// 0.28 <nil>
}

func ExampleNewAmountFromDecimal() {
	fmt.Println(money.NewAmountFromDecimal(decimal.MustParse("1.2300")))
	// Output: 1.23 <nil>
}

func ExampleAmount_MinorUnits() {
	a := money.MustParseAmount("-1.6")
	fmt.Println(a.MinorUnits())
	// Output: -160
}

func ExampleAmount_Int64() {
	a := money.MustParseAmount("15.67")
	b := money.MustParseAmount("-15.67")
	fmt.Println(a.Int64())
	fmt.Println(b.Int64())
	// Output:
	// 15
	// -15
}

func ExampleAmount_Float64() {
	a := money.MustParseAmount("15.6")
	fmt.Println(a.Float64())
	// Output: 15.6
}

func ExampleAmount_Decimal() {
	a := money.MustParseAmount("5.2")
	fmt.Println(a.Decimal())
	// Output: 5.20
}

func ExampleAmount_Add() {
	a := money.MustParseAmount("15.6")
	b := money.MustParseAmount("8")
	fmt.Println(a.Add(b))
	// Output: 23.60
}

func ExampleAmount_Sub() {
	a := money.MustParseAmount("15.6")
	b := money.MustParseAmount("8")
	fmt.Println(a.Sub(b))
	// Output: 7.60
}

func ExampleAmount_Mul() {
	a := money.MustParseAmount("10.10")
	b := money.MustParseAmount("0.15")
	fmt.Println(a.Mul(a))
	fmt.Println(b.Mul(b))
	// Output:
	// 102.01
	// 0.02
}

func ExampleAmount_Quo() {
	a := money.MustParseAmount("4.02")
	b := money.MustParseAmount("4")
	fmt.Println(a.Quo(b, money.HalfDown))
	fmt.Println(a.Quo(b, money.HalfUp))
	fmt.Println(a.Quo(b, money.HalfEven))
	// Output:
	// 1.00 <nil>
	// 1.01 <nil>
	// 1.00 <nil>
}

func ExampleAmount_Rat() {
	a := money.MustParseAmount("8")
	b := money.MustParseAmount("10")
	fmt.Println(a.Rat(b))
	// Output: 0.8 <nil>
}

func ExampleAmount_Split() {
	a := money.MustParseAmount("1.01")
	fmt.Println(a.Split(3))
	// Output: [0.34 0.34 0.33] <nil>
}

func ExampleAmount_Abs() {
	a := money.MustParseAmount("-15.67")
	fmt.Println(a.Abs())
	// Output: 15.67
}

func ExampleAmount_Neg() {
	a := money.MustParseAmount("15.67")
	fmt.Println(a.Neg())
	// Output: -15.67
}

func ExampleAmount_Sign() {
	a := money.MustParseAmount("-15.67")
	b := money.MustParseAmount("0")
	c := money.MustParseAmount("15.67")
	fmt.Println(a.Sign())
	fmt.Println(b.Sign())
	fmt.Println(c.Sign())
	// Output:
	// -1
	// 0
	// 1
}

func ExampleAmount_Cmp() {
	a := money.MustParseAmount("-23")
	b := money.MustParseAmount("5.67")
	fmt.Println(a.Cmp(b))
	fmt.Println(a.Cmp(a))
	fmt.Println(b.Cmp(a))
	// Output:
	// -1
	// 0
	// 1
}

func ExampleAmount_GreaterThan() {
	a := money.MustParseAmount("5")
	b := money.MustParseAmount("4.99")
	fmt.Println(a.GreaterThan(b))
	fmt.Println(a.LessThanOrEqual(b))
	// Output:
	// true
	// false
}

func ExampleAmount_String() {
	a := money.MustParseAmount("-0.5")
	fmt.Println(a.String())
	// Output: -0.50
}

func ExampleAmount_MarshalJSON() {
	a := money.MustParseAmount("12.3")
	b, _ := a.MarshalJSON()
	fmt.Println(string(b))
	// Output: "12.30"
}
