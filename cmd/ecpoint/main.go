package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/big"
	"os"
	"strconv"
	"strings"

	"github.com/smartcontractkit/weierstrass/internal/curves"
	"github.com/smartcontractkit/weierstrass/internal/logger"
)

const usage = `usage: ecpoint [flags] <command> [args]

Points are given as two coordinates X Y (base 10, or base 16 with 0x prefix), or as "inf" for the point at infinity.

commands:
  generator            print the base point G
  verify X Y           check that (X, Y) satisfies the curve equation
  add P Q              print P + Q
  double P             print 2·P
  negate P             print -P
  mul K [P]            print K·P, or K·G if no point is given (K may be negative)
  order P [LIMIT]      print the order of P, searching up to LIMIT (default 1000000)

flags:
`

const defaultOrderLimit = 1_000_000

var errUsage = errors.New("invalid usage")

func main() {
	curveName := flag.String("curve", envOr("ECPOINT_CURVE", curves.Secp256k1.Name()),
		"curve to operate on, one of: "+strings.Join(curves.Names(), ", "))
	logLevel := flag.String("log-level", "info", "minimum level of log messages written to stderr")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	log, err := logger.NewLogger(os.Stderr, *logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ecpoint: %v\n", err)
		os.Exit(2)
	}

	curve, err := curves.CurveByName(*curveName)
	if err != nil {
		log.Error("curve lookup failed", logger.Fields{"curve": *curveName, "supported": curves.Names()})
		os.Exit(2)
	}

	if err := run(curve, flag.Args(), os.Stdout, log); err != nil {
		log.Error(err.Error(), logger.Fields{"curve": curve.Name(), "args": flag.Args()})
		if errors.Is(err, errUsage) {
			flag.Usage()
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(curve *curves.NamedCurve, args []string, out io.Writer, log *logger.Logger) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing command", errUsage)
	}
	cmd, args := args[0], args[1:]
	log.Debug("running command", logger.Fields{"curve": curve.Name(), "op": cmd, "args": args})

	switch cmd {
	case "generator":
		if len(args) != 0 {
			return fmt.Errorf("%w: generator takes no arguments", errUsage)
		}
		fmt.Fprintln(out, curve.G)

	case "verify":
		p, err := parseSinglePoint(curve, cmd, args)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, curve.IsOnCurve(p))

	case "add":
		p, rest, err := parsePoint(curve, args)
		if err != nil {
			return err
		}
		q, err := parseSinglePoint(curve, cmd, rest)
		if err != nil {
			return err
		}
		warnIfNotOnCurve(curve, log, p, q)
		r, err := curve.Add(p, q)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, r)

	case "double":
		p, err := parseSinglePoint(curve, cmd, args)
		if err != nil {
			return err
		}
		warnIfNotOnCurve(curve, log, p)
		r, err := curve.Double(p)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, r)

	case "negate":
		p, err := parseSinglePoint(curve, cmd, args)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, curve.Negate(p))

	case "mul":
		if len(args) == 0 {
			return fmt.Errorf("%w: mul requires a scalar", errUsage)
		}
		k, ok := new(big.Int).SetString(args[0], 0)
		if !ok {
			return fmt.Errorf("%w: invalid scalar %q", errUsage, args[0])
		}
		p := curve.G
		if len(args) > 1 {
			var err error
			if p, err = parseSinglePoint(curve, cmd, args[1:]); err != nil {
				return err
			}
		}
		warnIfNotOnCurve(curve, log, p)
		log.Debug("scalar multiplication", logger.Fields{"curve": curve.Name(), "k": k.String(), "bits": k.BitLen()})
		r, err := curve.ScalarMultBig(k, p)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, r)

	case "order":
		p, rest, err := parsePoint(curve, args)
		if err != nil {
			return err
		}
		limit := uint64(defaultOrderLimit)
		switch len(rest) {
		case 0:
		case 1:
			if limit, err = strconv.ParseUint(rest[0], 10, 64); err != nil {
				return fmt.Errorf("%w: invalid limit %q", errUsage, rest[0])
			}
		default:
			return fmt.Errorf("%w: too many arguments for order", errUsage)
		}
		warnIfNotOnCurve(curve, log, p)
		n, err := curve.Order(p, limit)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, n)

	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
	return nil
}

// Parses a point from the head of args, returns the point and the remaining arguments.
func parsePoint(curve *curves.NamedCurve, args []string) (curves.Point, []string, error) {
	if len(args) > 0 && args[0] == "inf" {
		return curve.Identity(), args[1:], nil
	}
	if len(args) < 2 {
		return curves.Point{}, nil, fmt.Errorf("%w: expected a point (X Y or inf)", errUsage)
	}
	p, err := curve.Point(args[0], args[1])
	if err != nil {
		return curves.Point{}, nil, fmt.Errorf("%w: %v", errUsage, err)
	}
	return p, args[2:], nil
}

func parseSinglePoint(curve *curves.NamedCurve, cmd string, args []string) (curves.Point, error) {
	p, rest, err := parsePoint(curve, args)
	if err != nil {
		return curves.Point{}, err
	}
	if len(rest) != 0 {
		return curves.Point{}, fmt.Errorf("%w: too many arguments for %s", errUsage, cmd)
	}
	return p, nil
}

func warnIfNotOnCurve(curve *curves.NamedCurve, log *logger.Logger, points ...curves.Point) {
	for _, p := range points {
		if !p.IsInfinity() && !curve.IsOnCurve(p) {
			log.Warn("point does not satisfy the curve equation, result is meaningless",
				logger.Fields{"curve": curve.Name(), "point": p.String()})
		}
	}
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
