package factorial_test

import (
	"fmt"

	"github.com/jmgilman/go/factorial"
)

func Example() {
	engine := factorial.New(factorial.WithPresieve(100))
	factors := engine.Factorize(50)

	fmt.Println(factors[2])
	// Output: 47
}

func ExampleEngine_Factorize() {
	engine := factorial.New()
	factors := engine.Factorize(10)

	fmt.Println(factors)
	for _, term := range factors.Terms() {
		fmt.Printf("%d^%d\n", term.Prime, term.Exponent)
	}
	// Output:
	// 2^8 · 3^4 · 5^2 · 7
	// 2^8
	// 3^4
	// 5^2
	// 7^1
}

func ExampleExponent() {
	fmt.Println(factorial.Exponent(100, 5))
	// Output: 24
}

func ExampleFactorization_Product() {
	factors := factorial.New().Factorize(20)

	fmt.Println(factors.Product())
	fmt.Println(factors.Product().Cmp(factorial.Factorial(20)) == 0)
	// Output:
	// 2432902008176640000
	// true
}
