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

// Package transport is a minimal demonstration of shipping encoded shards
// over a KCP/smux session: a Server holds one encoded batch in memory and
// serves individual shards by index on request; a Client dials in, reads
// the manifest, and fetches the shards it is missing. It exists to give
// the encoder/decoder's output somewhere to go over a network, not as a
// general-purpose tunnel.
//
// It carries no cryptographic claims beyond confidentiality-by-obscurity
// of the PBKDF2-derived session key; novelrs's own Non-goals (no
// cryptographic properties) describe the erasure code, not this
// transport.
package transport

import (
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"hash/crc32"
	"io"
	"log"

	"github.com/pkg/errors"
	kcp "github.com/xtaci/kcp-go/v5"
	"github.com/xtaci/smux"
	"golang.org/x/crypto/pbkdf2"
)

// salt is fixed; the key itself is the only secret material.
const salt = "novelrs"

// Manifest describes one encoded batch: how many bytes the original
// payload was, how many shards it was split into, the per-shard byte
// length, and a CRC32 checksum of each shard so a Client can detect
// corruption before handing a shard to Reconstruct.
type Manifest struct {
	PayloadSize int      `json:"payload_size"`
	NReq        int      `json:"n_req"`
	ShardLen    int      `json:"shard_len"`
	Checksums   []uint32 `json:"checksums"`
}

// NewManifest builds a Manifest from an encoded batch's raw shard bytes.
func NewManifest(payloadSize int, shards [][]byte) Manifest {
	m := Manifest{
		PayloadSize: payloadSize,
		NReq:        len(shards),
		Checksums:   make([]uint32, len(shards)),
	}
	if len(shards) > 0 {
		m.ShardLen = len(shards[0])
	}
	for i, s := range shards {
		m.Checksums[i] = crc32.ChecksumIEEE(s)
	}
	return m
}

func deriveBlock(key string) (kcp.BlockCrypt, error) {
	pass := pbkdf2.Key([]byte(key), []byte(salt), 4096, 32, sha1.New)
	return kcp.NewAESBlockCrypt(pass)
}

// Server serves one encoded batch's shards to any client holding the same
// key. It is not safe for concurrent Serve calls on the same instance.
type Server struct {
	key    string
	shards [][]byte
}

// NewServer wraps an already-encoded batch of shards for serving.
func NewServer(key string, shards [][]byte) *Server {
	return &Server{key: key, shards: shards}
}

// Serve listens on addr and blocks, handling sessions until accepting a
// connection fails. The listener is not exposed to callers, so Serve
// cannot be stopped from another goroutine.
func (s *Server) Serve(addr string) error {
	block, err := deriveBlock(s.key)
	if err != nil {
		return errors.Wrap(err, "derive block cipher")
	}

	listener, err := kcp.ListenWithOptions(addr, block, 10, 3)
	if err != nil {
		return errors.Wrap(err, "kcp listen")
	}
	defer listener.Close()

	log.Println("transport: serving", len(s.shards), "shards on", addr)

	for {
		conn, err := listener.AcceptKCP()
		if err != nil {
			return errors.Wrap(err, "accept")
		}
		go s.handleSession(conn)
	}
}

func (s *Server) handleSession(conn *kcp.UDPSession) {
	defer conn.Close()

	session, err := smux.Server(conn, smux.DefaultConfig())
	if err != nil {
		log.Println("transport: smux server:", err)
		return
	}
	defer session.Close()

	for {
		stream, err := session.AcceptStream()
		if err != nil {
			return
		}
		go s.handleStream(stream)
	}
}

func (s *Server) handleStream(stream *smux.Stream) {
	defer stream.Close()

	var req request
	if err := json.NewDecoder(stream).Decode(&req); err != nil {
		log.Println("transport: decode request:", err)
		return
	}

	switch req.Kind {
	case kindManifest:
		manifest := NewManifest(req.PayloadSize, s.shards)
		if err := json.NewEncoder(stream).Encode(manifest); err != nil {
			log.Println("transport: encode manifest:", err)
		}
	case kindShard:
		if req.Index < 0 || req.Index >= len(s.shards) {
			log.Println("transport: shard index out of range:", req.Index)
			return
		}
		if _, err := stream.Write(s.shards[req.Index]); err != nil {
			log.Println("transport: write shard:", err)
		}
	default:
		log.Println("transport: unknown request kind:", req.Kind)
	}
}

const (
	kindManifest = "manifest"
	kindShard    = "shard"
)

type request struct {
	Kind        string `json:"kind"`
	Index       int    `json:"index,omitempty"`
	PayloadSize int    `json:"payload_size,omitempty"`
}

// Client fetches shards from a Server.
type Client struct {
	key     string
	session *smux.Session
}

// Dial establishes a session with a Server listening at addr.
func Dial(addr, key string) (*Client, error) {
	block, err := deriveBlock(key)
	if err != nil {
		return nil, errors.Wrap(err, "derive block cipher")
	}

	conn, err := kcp.DialWithOptions(addr, block, 10, 3)
	if err != nil {
		return nil, errors.Wrap(err, "kcp dial")
	}
	conn.SetStreamMode(true)

	session, err := smux.Client(conn, smux.DefaultConfig())
	if err != nil {
		return nil, errors.Wrap(err, "smux client")
	}

	return &Client{key: key, session: session}, nil
}

// Close tears down the client's session.
func (c *Client) Close() error {
	return c.session.Close()
}

// FetchManifest asks the server for its Manifest.
func (c *Client) FetchManifest() (Manifest, error) {
	stream, err := c.session.OpenStream()
	if err != nil {
		return Manifest{}, errors.Wrap(err, "open stream")
	}
	defer stream.Close()

	if err := json.NewEncoder(stream).Encode(request{Kind: kindManifest}); err != nil {
		return Manifest{}, errors.Wrap(err, "send manifest request")
	}

	var m Manifest
	if err := json.NewDecoder(stream).Decode(&m); err != nil {
		return Manifest{}, errors.Wrap(err, "decode manifest")
	}
	return m, nil
}

// FetchShard downloads shard index and validates it against the
// manifest's checksum for that index.
func (c *Client) FetchShard(manifest Manifest, index int) ([]byte, error) {
	stream, err := c.session.OpenStream()
	if err != nil {
		return nil, errors.Wrap(err, "open stream")
	}
	defer stream.Close()

	if err := json.NewEncoder(stream).Encode(request{Kind: kindShard, Index: index}); err != nil {
		return nil, errors.Wrap(err, "send shard request")
	}

	buf := make([]byte, manifest.ShardLen)
	if _, err := io.ReadFull(stream, buf); err != nil {
		return nil, errors.Wrapf(err, "read shard %d", index)
	}

	if got := crc32.ChecksumIEEE(buf); index < len(manifest.Checksums) && got != manifest.Checksums[index] {
		return nil, fmt.Errorf("transport: shard %d failed checksum: got %08x want %08x", index, got, manifest.Checksums[index])
	}
	return buf, nil
}
