// Command lexycat exercises the lexy codec from the command line: it
// encodes one scalar argument per invocation to hex, or, with -d, decodes a
// hex string back to its value and prints it.
//
// Usage:
//
//	lexycat 42
//	lexycat -- -17
//	lexycat 3.14159
//	lexycat "hello world"
//	lexycat -d 41
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"math/big"
	"os"
	"strconv"

	"github.com/ordlex/lexy"
)

func main() {
	decode := flag.Bool("d", false, "decode a hex-encoded lexy value instead of encoding one")
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: lexycat [-d] <value>")
		os.Exit(2)
	}

	if *decode {
		if err := runDecode(args[0]); err != nil {
			fmt.Fprintln(os.Stderr, "lexycat:", err)
			os.Exit(1)
		}
		return
	}
	if err := runEncode(args[0]); err != nil {
		fmt.Fprintln(os.Stderr, "lexycat:", err)
		os.Exit(1)
	}
}

func runEncode(arg string) error {
	v, err := parseValue(arg)
	if err != nil {
		return err
	}
	buf, err := lexy.Dumps(v)
	if err != nil {
		return err
	}
	fmt.Println(hex.EncodeToString(buf))
	return nil
}

func runDecode(arg string) error {
	buf, err := hex.DecodeString(arg)
	if err != nil {
		return fmt.Errorf("invalid hex: %w", err)
	}
	v, err := lexy.Loads(buf)
	if err != nil {
		return err
	}
	fmt.Println(formatValue(v))
	return nil
}

// parseValue interprets arg as the most specific scalar it resembles: the
// literal "null", "true"/"false", an integer, a float, or else a plain
// UTF-8 string.
func parseValue(arg string) (lexy.Value, error) {
	switch arg {
	case "null":
		return lexy.Null{}, nil
	case "true":
		return lexy.Bool(true), nil
	case "false":
		return lexy.Bool(false), nil
	}
	if i, ok := new(big.Int).SetString(arg, 10); ok {
		return lexy.NewBigInt(i), nil
	}
	if f, err := strconv.ParseFloat(arg, 64); err == nil {
		return lexy.NewFloat(f), nil
	}
	return lexy.Str(arg), nil
}

func formatValue(v lexy.Value) string {
	switch val := v.(type) {
	case lexy.Null:
		return "null"
	case lexy.Bool:
		return strconv.FormatBool(bool(val))
	case lexy.NaN:
		return "nan"
	case lexy.Special:
		if val == lexy.NegInf {
			return "-inf"
		}
		return "+inf"
	case *lexy.Number:
		return formatNumber(val)
	case lexy.Str:
		return string(val)
	case lexy.Bytes:
		return "0x" + hex.EncodeToString(val)
	case lexy.List:
		out := "["
		for i, child := range val {
			if i > 0 {
				out += ", "
			}
			out += formatValue(child)
		}
		return out + "]"
	default:
		return fmt.Sprintf("%v", v)
	}
}

func formatNumber(n *lexy.Number) string {
	r := new(big.Rat).SetFrac(n.Num, n.Denom)
	if n.Sign < 0 {
		r.Neg(r)
	}
	if r.IsInt() {
		return r.Num().String()
	}
	return r.RatString()
}
