package decimal_test

import (
	"errors"
	"fmt"

	"github.com/govalues/numinput/decimal"
)

func ExampleParse() {
	d, err := decimal.Parse("-0012.50")
	if err != nil {
		panic(err)
	}
	fmt.Println(d, d.Scale())
	// Output: -12.50 2
}

func ExampleParse_errors() {
	for _, s := range []string{"", "-", "1.", "1e", "2x"} {
		_, err := decimal.Parse(s)
		switch {
		case err == nil:
			fmt.Printf("%q: number\n", s)
		case errors.Is(err, decimal.ErrEmpty):
			fmt.Printf("%q: empty\n", s)
		case errors.Is(err, decimal.ErrIncomplete):
			fmt.Printf("%q: incomplete\n", s)
		case errors.Is(err, decimal.ErrMalformed):
			fmt.Printf("%q: malformed\n", s)
		}
	}
	// Output:
	// "": empty
	// "-": incomplete
	// "1.": number
	// "1e": incomplete
	// "2x": malformed
}

func ExampleMustParse() {
	fmt.Println(decimal.MustParse("-3.637978807091713e-12"))
	// Output: -0.000000000003637978807091713
}

func ExampleFromFloat64() {
	fmt.Println(decimal.FromFloat64(0.1))
	fmt.Println(decimal.FromFloat64(1e-7))
	// Output:
	// 0.1
	// 0.0000001
}

func ExampleAdd() {
	d := decimal.MustParse("0.1")
	e := decimal.MustParse("0.2")
	fmt.Println(decimal.Add(d, e))
	// Output: 0.3
}

func ExampleCompare() {
	d := decimal.MustParse("2")
	e := decimal.MustParse("2.000")
	fmt.Println(decimal.Compare(d, e))
	fmt.Println(decimal.Compare(d, decimal.NaN))
	fmt.Println(decimal.Compare(decimal.NaN, decimal.NaN))
	// Output:
	// equal
	// unordered
	// unordered
}

func ExampleValue_Round() {
	fmt.Println(decimal.MustParse("3.455").Round(2))
	fmt.Println(decimal.MustParse("9.995").Round(2))
	fmt.Println(decimal.MustParse("2.1").Round(3))
	// Output:
	// 3.46
	// 10.00
	// 2.100
}

func ExampleValue_Reduce() {
	fmt.Println(decimal.MustParse("6.0").Reduce())
	// Output: 6
}

func ExampleValue_Shift() {
	step := decimal.MustParse("0.5")
	fmt.Println(step.Shift(1))
	fmt.Println(step.Shift(-1))
	// Output:
	// 5
	// 0.05
}

func ExampleNormalize() {
	n := decimal.Normalize(" -007.50 ")
	fmt.Println(n.Negative, n.Integer, n.Fraction)
	fmt.Println(decimal.Normalize("-0"), decimal.NormalizeSigned("-0"))
	// Output:
	// true 7 50
	// 0 -0
}

func ExampleClassify() {
	for _, s := range []string{"", "-", "1.", "1.5", "xx"} {
		fmt.Printf("%q: %v\n", s, decimal.Classify(s))
	}
	// Output:
	// "": empty
	// "-": partial
	// "1.": partial
	// "1.5": valid
	// "xx": malformed
}

func ExampleBackend() {
	for _, b := range []decimal.Backend{decimal.Big, decimal.Float} {
		d, _ := b.Parse("0.1")
		e, _ := b.Parse("0.2")
		fmt.Println(b.Name(), d.Add(e))
	}
	// Output:
	// big 0.3
	// float 0.3
}
