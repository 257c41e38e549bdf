// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package board keeps the display list of generated tickets.

# Boards

A Board is a newest-first list with a fixed capacity:

	b := board.New(20)
	b.Prepend(board.Entry{Ticket: t, GeneratedAt: time.Now()})
	entries := b.Entries() // copy, newest first
	b.Clear()

# Sessions

A Store maps session IDs (UUIDv4) to boards. Nothing is persisted; a
session's tickets are gone once the session is deleted or the process exits.

	store := board.NewStore(20)
	id := store.Create()
	b, err := store.Get(id) // board.ErrSessionNotFound for unknown IDs
*/
package board
