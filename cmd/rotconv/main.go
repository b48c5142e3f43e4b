// Command rotconv converts an orientation between Euler rotation orders,
// quaternions and the engine Euler convention.
//
//	rotconv -from XYZ -angles 10,20,30 -to ZYX
//	rotconv -quat 0,0.3826834,0,0.9238795 -all
//	rotconv -engine 0,90,0 -prev 10,80,0
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"orientkit/internal/euler"
	"orientkit/internal/mathutil"
)

func main() {
	from := flag.String("from", "XYZ", "Rotation order of -angles")
	angles := flag.String("angles", "", "Three comma-separated angles in -from order")
	quat := flag.String("quat", "", "Quaternion x,y,z,w (normalized before use)")
	engine := flag.String("engine", "", "Engine Euler angles x,y,z")
	to := flag.String("to", "", "Rotation order to convert to (default: same as -from)")
	all := flag.Bool("all", false, "Print the angles in all 12 orders")
	prev := flag.String("prev", "", "Previous engine angles; pick the nearer of the two engine solutions")
	rad := flag.Bool("rad", false, "Angles are in radians instead of degrees")

	flag.Parse()

	src, err := input(*from, *angles, *quat, *engine, *rad)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	u := src.quat

	q := u.Quat()
	fmt.Printf("quat     %.7f, %.7f, %.7f, %.7f\n", q[0], q[1], q[2], q[3])

	eng := euler.QuatToEuler(u)
	if *prev != "" {
		p, err := parseTriple(*prev, *rad)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: -prev: %v\n", err)
			os.Exit(2)
		}
		eng = euler.QuatToEulerNearest(u, p)
	}
	fmt.Printf("engine   %s\n", format(eng, *rad))

	var orders []euler.Order
	switch {
	case *all:
		orders = euler.Orders()
	case *to != "":
		o, err := euler.ParseOrder(*to)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: -to: %v\n", err)
			os.Exit(2)
		}
		orders = []euler.Order{o}
	case src.hasOrder:
		orders = []euler.Order{src.order}
	}
	for _, o := range orders {
		fmt.Printf("%-8s %s\n", o, format(euler.FromQuat(u, o), *rad))
	}
}

// source is the parsed input rotation. order is set when it was given as
// angles in an explicit rotation order.
type source struct {
	quat     mathutil.UnitQuat
	order    euler.Order
	hasOrder bool
}

// input builds the rotation from whichever of the three forms was given.
func input(from, angles, quat, engine string, rad bool) (source, error) {
	given := 0
	for _, s := range []string{angles, quat, engine} {
		if s != "" {
			given++
		}
	}
	if given != 1 {
		return source{}, errors.New("give exactly one of -angles, -quat, -engine")
	}

	switch {
	case quat != "":
		v, err := parseFloats(quat, 4)
		if err != nil {
			return source{}, fmt.Errorf("-quat: %w", err)
		}
		u, err := mathutil.NewUnitQuat(mathutil.Quat{v[0], v[1], v[2], v[3]})
		return source{quat: u}, err
	case engine != "":
		e, err := parseTriple(engine, rad)
		if err != nil {
			return source{}, fmt.Errorf("-engine: %w", err)
		}
		u, err := mathutil.NewUnitQuat(euler.EulerToQuat(e))
		return source{quat: u}, err
	default:
		o, err := euler.ParseOrder(from)
		if err != nil {
			return source{}, fmt.Errorf("-from: %w", err)
		}
		a, err := parseTriple(angles, rad)
		if err != nil {
			return source{}, fmt.Errorf("-angles: %w", err)
		}
		u, err := mathutil.NewUnitQuat(euler.ToQuat(a, o))
		return source{quat: u, order: o, hasOrder: true}, err
	}
}

func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("want %d comma-separated numbers, got %d", n, len(parts))
	}
	out := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func parseTriple(s string, rad bool) (euler.Angles, error) {
	v, err := parseFloats(s, 3)
	if err != nil {
		return euler.Angles{}, err
	}
	if rad {
		return euler.Angles{v[0], v[1], v[2]}, nil
	}
	return euler.FromDegrees(v[0], v[1], v[2]), nil
}

func format(a euler.Angles, rad bool) string {
	v := [3]float64(a)
	if !rad {
		v = a.Degrees()
	}
	return fmt.Sprintf("%.4f, %.4f, %.4f", v[0], v[1], v[2])
}
