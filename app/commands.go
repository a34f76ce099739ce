package main

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	varint "github.com/luke-vidler/sqlite-varint"
)

var (
	cmdEncode = cli.Command{
		Name:      "encode",
		Usage:     "print the varint encoding of integers as hex",
		ArgsUsage: "<int64>...",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "separator, s",
				Usage: "separator between encoded bytes",
			},
		},
		Action: handleEncode,
	}

	cmdDecode = cli.Command{
		Name:      "decode",
		Usage:     "decode the varint at the start of hex encoded bytes",
		ArgsUsage: "<hex>...",
		Flags: []cli.Flag{
			cli.BoolFlag{
				Name:  "all, a",
				Usage: "decode every varint in the input, not only the first",
			},
		},
		Action: handleDecode,
	}

	cmdLen = cli.Command{
		Name:      "len",
		Usage:     "print the byte length of the varint at the start of hex encoded bytes",
		ArgsUsage: "<hex>...",
		Action:    handleLen,
	}
)

// handleEncode handles the encode command
func handleEncode(c *cli.Context) error {
	if len(c.Args()) == 0 {
		return errors.New("encode: no values given")
	}
	sep := c.String("separator")
	for _, arg := range c.Args() {
		// base 0 accepts 0x and 0b prefixes
		v, err := strconv.ParseInt(arg, 0, 64)
		if err != nil {
			return errors.Wrapf(err, "encode %q", arg)
		}
		encoded := varint.Serialize(v)
		parts := make([]string, len(encoded))
		for i, b := range encoded {
			parts[i] = fmt.Sprintf("%02x", b)
		}
		fmt.Fprintln(c.App.Writer, strings.Join(parts, sep))
	}
	return nil
}

// handleDecode handles the decode command
func handleDecode(c *cli.Context) error {
	if len(c.Args()) == 0 {
		return errors.New("decode: no input given")
	}
	all := c.Bool("all")
	for _, arg := range c.Args() {
		data, err := parseHex(arg)
		if err != nil {
			return errors.Wrap(err, "decode")
		}
		for {
			v, n, err := varint.Read(data)
			if err != nil {
				return errors.Wrapf(err, "decode %q", arg)
			}
			fmt.Fprintf(c.App.Writer, "%d %d\n", v, n)
			data = data[n:]
			if !all || len(data) == 0 {
				break
			}
		}
	}
	return nil
}

// handleLen handles the len command
func handleLen(c *cli.Context) error {
	if len(c.Args()) == 0 {
		return errors.New("len: no input given")
	}
	for _, arg := range c.Args() {
		data, err := parseHex(arg)
		if err != nil {
			return errors.Wrap(err, "len")
		}
		n, err := varint.ByteLength(data)
		if err != nil {
			return errors.Wrapf(err, "len %q", arg)
		}
		fmt.Fprintln(c.App.Writer, n)
	}
	return nil
}

// parseHex decodes hex input, ignoring a 0x prefix and any spaces
func parseHex(s string) ([]byte, error) {
	cleaned := strings.TrimPrefix(strings.ToLower(s), "0x")
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	data, err := hex.DecodeString(cleaned)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid hex %q", s)
	}
	return data, nil
}
