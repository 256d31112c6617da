// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/transitcat/codec"
	"github.com/katalvlaran/transitcat/jsonutil"
	"github.com/katalvlaran/transitcat/session"
)

// runProcessRequests loads the binary artifact named by
// serialization_settings.file, answers every stat_requests entry against
// it, and writes the resulting JSON array to w.
func runProcessRequests(r io.Reader, w io.Writer) error {
	in, err := jsonutil.Decode(r)
	if err != nil {
		return fmt.Errorf("process_requests: %w", err)
	}

	if in.SerializationSettings.File == "" {
		return fmt.Errorf("process_requests: serialization_settings.file is empty")
	}

	state, err := readArtifact(in.SerializationSettings.File)
	if err != nil {
		return fmt.Errorf("process_requests: %w", err)
	}

	log.Printf("process_requests: loaded artifact (stops=%d buses=%d edges=%d), answering %d stat requests",
		state.NumStops(), state.NumBuses(), state.NumEdges(), len(in.StatRequests))

	replies := make([]*jsonutil.Reply, len(in.StatRequests))
	for i, req := range in.StatRequests {
		reply, err := state.Answer(req)
		if err != nil {
			return fmt.Errorf("process_requests: stat request %d: %w", req.ID, err)
		}
		replies[i] = reply
	}

	out, err := jsonutil.EncodeReplies(replies)
	if err != nil {
		return fmt.Errorf("process_requests: encode replies: %w", err)
	}

	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("process_requests: write output: %w", err)
	}
	return nil
}

func readArtifact(path string) (state *session.State, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	s, err := codec.Read(f)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return s, nil
}
