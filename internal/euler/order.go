// Package euler converts between Euler angle triples and quaternions for all
// twelve rotation orders, and picks among equivalent Euler solutions.
//
// Angles are intrinsic: for order ZYX the triple (a, b, c) means rotate by a
// around Z, then by b around the new Y, then by c around the newest X.
package euler

import (
	"errors"
	"fmt"
	"strings"
)

// Order names the axis sequence of an Euler angle triple.
type Order uint8

// Proper Euler orders repeat the first axis; Tait-Bryan orders use three
// distinct axes. The numeric values match the engine's order constants.
const (
	XYX Order = iota
	YZY
	ZXZ
	XZX
	YXY
	ZYZ
	XYZ
	YZX
	ZXY
	XZY
	YXZ
	ZYX

	numOrders
)

// ErrUnknownOrder is returned by ParseOrder for names outside the 12 orders.
var ErrUnknownOrder = errors.New("euler: unknown rotation order")

var orderNames = [numOrders]string{
	"XYX", "YZY", "ZXZ", "XZX", "YXY", "ZYZ",
	"XYZ", "YZX", "ZXY", "XZY", "YXZ", "ZYX",
}

// Orders lists every valid order.
func Orders() []Order {
	out := make([]Order, numOrders)
	for i := range out {
		out[i] = Order(i)
	}
	return out
}

// ParseOrder maps a name such as "zyx" to its Order.
func ParseOrder(s string) (Order, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range orderNames {
		if n == name {
			return Order(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOrder, s)
}

// Valid reports whether o is one of the 12 orders.
func (o Order) Valid() bool {
	return o < numOrders
}

// Proper reports whether the first and third axes coincide.
func (o Order) Proper() bool {
	return o <= ZYZ
}

// Axes returns the axis indices (0=X, 1=Y, 2=Z) in application order.
func (o Order) Axes() [3]int {
	o.mustBeValid()
	var axes [3]int
	for i, c := range orderNames[o] {
		axes[i] = int(c - 'X')
	}
	return axes
}

func (o Order) String() string {
	if !o.Valid() {
		return fmt.Sprintf("Order(%d)", uint8(o))
	}
	return orderNames[o]
}

// MarshalText implements encoding.TextMarshaler.
func (o Order) MarshalText() ([]byte, error) {
	if !o.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownOrder, uint8(o))
	}
	return []byte(orderNames[o]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Order) UnmarshalText(b []byte) error {
	v, err := ParseOrder(string(b))
	if err != nil {
		return err
	}
	*o = v
	return nil
}

func (o Order) mustBeValid() {
	if !o.Valid() {
		panic(fmt.Sprintf("euler: invalid rotation order %d", uint8(o)))
	}
}
