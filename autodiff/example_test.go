package autodiff_test

import (
	"errors"
	"fmt"

	"github.com/born-ml/micrograd/autodiff"
)

func Example() {
	a := autodiff.NewLabeled(2, "a")
	b := autodiff.NewLabeled(-3, "b")
	c := autodiff.NewLabeled(10, "c")
	f := autodiff.NewLabeled(-2, "f")
	L := a.Mul(b).Add(c).Mul(f).SetLabel("L")

	if err := autodiff.Backward(L); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(L)
	fmt.Println(a.Grad(), b.Grad(), c.Grad(), f.Grad())
	// Output:
	// Value(data=-8, grad=1, label=L)
	// 6 -4 -2 4
}

func ExampleTry() {
	x := autodiff.New(-1)
	_, err := autodiff.Try(func() *autodiff.Value { return x.Log() })

	var domainErr *autodiff.DomainError
	fmt.Println(errors.As(err, &domainErr), domainErr.Op == autodiff.OpLog)
	// Output:
	// true true
}

func ExampleConst() {
	x := autodiff.New(3)
	y := autodiff.Const(1).Sub(x.Pow(autodiff.Const(2))) // 1 - x²
	_ = y.Backward()
	fmt.Println(y.Data(), x.Grad())
	// Output:
	// -8 -6
}

func ExampleTrace() {
	x := autodiff.NewLabeled(0.5, "x")
	y := x.Tanh().SetLabel("y")
	g, _ := autodiff.Trace(y)
	for _, n := range g.Nodes {
		fmt.Printf("%s op=%q\n", n.Label, n.Op)
	}
	fmt.Println(len(g.Edges))
	// Output:
	// x op=""
	// y op="tanh"
	// 1
}
