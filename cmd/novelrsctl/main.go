// The MIT License (MIT)
//
// # Copyright (c) 2016 xtaci
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/xtaci/novelrs"
	"github.com/xtaci/novelrs/params"
	"github.com/xtaci/novelrs/transport"
)

// VERSION is injected by buildflags.
var VERSION = "SELFBUILD"

func main() {
	if VERSION == "SELFBUILD" {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	app := cli.NewApp()
	app.Name = "novelrsctl"
	app.Usage = "Reed-Solomon erasure coding over GF(2^16), novel polynomial basis"
	app.Version = VERSION
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Usage: "load key and n_req from a JSON or YAML config file, overriding the command's flag defaults (not flags given explicitly on the command line)",
		},
	}
	app.Commands = []cli.Command{
		encodeCommand(),
		reconstructCommand(),
		serveCommand(),
		fetchCommand(),
		benchCommand(),
	}
	app.Before = func(c *cli.Context) error {
		path := c.GlobalString("config")
		if path == "" {
			return nil
		}

		var cfg fileConfig
		if err := loadConfig(path, &cfg); err != nil {
			return errors.Wrapf(err, "load config %s", path)
		}

		for _, cmd := range app.Commands {
			applyConfigDefaults(cmd.Flags, cfg)
		}
		return nil
	}

	if err := app.Run(os.Args); err != nil {
		log.Printf("%+v\n", err)
		os.Exit(1)
	}
}

func encodeCommand() cli.Command {
	return cli.Command{
		Name:  "encode",
		Usage: "split a file into n shard files",
		Flags: []cli.Flag{
			cli.StringFlag{Name: "in", Usage: "input payload file"},
			cli.StringFlag{Name: "out", Value: "shard", Usage: "output shard file prefix"},
			cli.IntFlag{Name: "n", Value: 10, Usage: "number of shards to produce"},
		},
		Action: func(c *cli.Context) error {
			payload, err := os.ReadFile(c.String("in"))
			if err != nil {
				return errors.Wrap(err, "read payload")
			}

			shards, err := novelrs.Encode(payload, c.Int("n"))
			if err != nil {
				return errors.Wrap(err, "encode")
			}

			prefix := c.String("out")
			for i, s := range shards {
				name := fmt.Sprintf("%s.%03d", prefix, i)
				if err := os.WriteFile(name, s.Bytes(), 0o644); err != nil {
					return errors.Wrapf(err, "write %s", name)
				}
			}
			log.Println("encode: wrote", len(shards), "shards with prefix", prefix)
			return nil
		},
	}
}

func reconstructCommand() cli.Command {
	return cli.Command{
		Name:  "reconstruct",
		Usage: "recover a payload from shard files; a shard file that cannot be read counts as missing",
		Flags: []cli.Flag{
			cli.StringFlag{Name: "in", Value: "shard", Usage: "input shard file prefix"},
			cli.IntFlag{Name: "n", Value: 10, Usage: "number of shards the batch was split into"},
			cli.StringFlag{Name: "out", Usage: "output payload file"},
			cli.IntFlag{Name: "len", Usage: "truncate recovered bytes to this length (the original payload size)"},
		},
		Action: func(c *cli.Context) error {
			nReq := c.Int("n")
			prefix := c.String("in")

			shards := make([]novelrs.Shard, nReq)
			present := 0
			for i := 0; i < nReq; i++ {
				name := fmt.Sprintf("%s.%03d", prefix, i)
				data, err := os.ReadFile(name)
				if err != nil {
					continue
				}
				shards[i] = novelrs.NewShard(data)
				present++
			}
			log.Println("reconstruct: found", present, "of", nReq, "shards")

			got, err := novelrs.Reconstruct(shards, nReq)
			if err != nil {
				return errors.Wrap(err, "reconstruct")
			}

			if l := c.Int("len"); l > 0 && l < len(got) {
				got = got[:l]
			}

			if err := os.WriteFile(c.String("out"), got, 0o644); err != nil {
				return errors.Wrap(err, "write output")
			}
			log.Println("reconstruct: wrote", len(got), "bytes to", c.String("out"))
			return nil
		},
	}
}

func serveCommand() cli.Command {
	return cli.Command{
		Name:  "serve",
		Usage: "encode a file and serve its shards over the demo KCP/smux transport",
		Flags: []cli.Flag{
			cli.StringFlag{Name: "in", Usage: "input payload file"},
			cli.IntFlag{Name: "n", Value: 10, Usage: "number of shards to produce"},
			cli.StringFlag{Name: "listen", Value: ":29900", Usage: "listen address"},
			cli.StringFlag{Name: "key", Value: "it's a secret", Usage: "pre-shared transport key", EnvVar: "NOVELRS_KEY"},
		},
		Action: func(c *cli.Context) error {
			payload, err := os.ReadFile(c.String("in"))
			if err != nil {
				return errors.Wrap(err, "read payload")
			}

			shards, err := novelrs.Encode(payload, c.Int("n"))
			if err != nil {
				return errors.Wrap(err, "encode")
			}

			raw := make([][]byte, len(shards))
			for i, s := range shards {
				raw[i] = s.Bytes()
			}

			if len(c.String("key")) < 16 {
				color.Red("warning: key is shorter than 16 bytes, consider a longer pre-shared key")
			}

			srv := transport.NewServer(c.String("key"), raw)
			return srv.Serve(c.String("listen"))
		},
	}
}

func fetchCommand() cli.Command {
	return cli.Command{
		Name:  "fetch",
		Usage: "fetch shards from a novelrsctl serve instance and reconstruct the payload",
		Flags: []cli.Flag{
			cli.StringFlag{Name: "addr", Usage: "server address"},
			cli.StringFlag{Name: "key", Value: "it's a secret", Usage: "pre-shared transport key", EnvVar: "NOVELRS_KEY"},
			cli.StringFlag{Name: "out", Usage: "output payload file"},
			cli.StringFlag{Name: "drop", Usage: "comma-separated shard indices to simulate as missing"},
		},
		Action: func(c *cli.Context) error {
			client, err := transport.Dial(c.String("addr"), c.String("key"))
			if err != nil {
				return errors.Wrap(err, "dial")
			}
			defer client.Close()

			manifest, err := client.FetchManifest()
			if err != nil {
				return errors.Wrap(err, "fetch manifest")
			}
			log.Println("fetch: manifest reports", manifest.NReq, "shards of", manifest.ShardLen, "bytes")

			dropped := parseIndices(c.String("drop"))

			shards := make([]novelrs.Shard, manifest.NReq)
			for i := 0; i < manifest.NReq; i++ {
				if dropped[i] {
					continue
				}
				data, err := client.FetchShard(manifest, i)
				if err != nil {
					log.Println("fetch: shard", i, "failed:", err)
					continue
				}
				shards[i] = novelrs.NewShard(data)
			}

			got, err := novelrs.Reconstruct(shards, manifest.NReq)
			if err != nil {
				return errors.Wrap(err, "reconstruct")
			}
			if manifest.PayloadSize > 0 && manifest.PayloadSize < len(got) {
				got = got[:manifest.PayloadSize]
			}

			if err := os.WriteFile(c.String("out"), got, 0o644); err != nil {
				return errors.Wrap(err, "write output")
			}
			log.Println("fetch: wrote", len(got), "bytes to", c.String("out"))
			return nil
		},
	}
}

func benchCommand() cli.Command {
	return cli.Command{
		Name:  "bench",
		Usage: "time encode and reconstruct for a synthetic payload",
		Flags: []cli.Flag{
			cli.IntFlag{Name: "size", Value: 1 << 20, Usage: "payload size in bytes"},
			cli.IntFlag{Name: "n", Value: 16, Usage: "number of shards"},
		},
		Action: func(c *cli.Context) error {
			size := c.Int("size")
			nReq := c.Int("n")

			_, k, err := params.Derive(nReq, 0)
			if err != nil {
				return errors.Wrap(err, "derive parameters")
			}

			payload := make([]byte, size)
			for i := range payload {
				payload[i] = byte(i)
			}

			start := time.Now()
			shards, err := novelrs.Encode(payload, nReq)
			if err != nil {
				return errors.Wrap(err, "encode")
			}
			encodeDur := time.Since(start)

			for i := k; i < nReq; i++ {
				shards[i] = nil
			}

			start = time.Now()
			got, err := novelrs.Reconstruct(shards, nReq)
			if err != nil {
				return errors.Wrap(err, "reconstruct")
			}
			decodeDur := time.Since(start)

			if string(got[:size]) != string(payload) {
				return errors.New("bench: reconstructed payload does not match original")
			}

			log.Printf("bench: n=%d k=%d size=%d encode=%s reconstruct=%s", nReq, k, size, encodeDur, decodeDur)
			return nil
		},
	}
}

// applyConfigDefaults overrides a command's "key" and "n" flag defaults in
// place with values from cfg, for any field cfg actually set. It runs once
// in app.Before, ahead of flag parsing, so a flag given explicitly on the
// command line still wins over the config file.
func applyConfigDefaults(flags []cli.Flag, cfg fileConfig) {
	for i, f := range flags {
		switch v := f.(type) {
		case cli.StringFlag:
			if v.Name == "key" && cfg.Key != "" {
				v.Value = cfg.Key
				flags[i] = v
			}
		case cli.IntFlag:
			if v.Name == "n" && cfg.NReq != 0 {
				v.Value = cfg.NReq
				flags[i] = v
			}
		}
	}
}

func parseIndices(csv string) map[int]bool {
	out := map[int]bool{}
	if csv == "" {
		return out
	}
	for _, part := range strings.Split(csv, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if idx, err := strconv.Atoi(part); err == nil {
			out[idx] = true
		}
	}
	return out
}
