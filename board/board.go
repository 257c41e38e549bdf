// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package board

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/danielhkuo/lucky-ticket/lottery"
)

var ErrSessionNotFound = errors.New("session not found")

// DefaultCapacity is the number of tickets a board keeps when none is configured.
const DefaultCapacity = 20

// Entry is a ticket on a board.
type Entry struct {
	Ticket      lottery.Ticket `json:"ticket"`
	GeneratedAt time.Time      `json:"generated_at"`
}

// Board is a newest-first list of tickets. Once full, prepending evicts the
// oldest entry.
type Board struct {
	mu       sync.Mutex
	entries  []Entry
	capacity int
}

func New(capacity int) *Board {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Board{capacity: capacity}
}

// Prepend puts e at the head of the board.
func (b *Board) Prepend(e Entry) {
	b.mu.Lock()
	defer b.mu.Unlock()

	e.Ticket = e.Ticket.Clone()
	b.entries = append([]Entry{e}, b.entries...)
	if len(b.entries) > b.capacity {
		b.entries = b.entries[:b.capacity]
	}
}

// Clear removes every entry.
func (b *Board) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries = nil
}

// Entries returns a copy of the board, newest first.
func (b *Board) Entries() []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()
	return lo.Map(b.entries, func(e Entry, _ int) Entry {
		e.Ticket = e.Ticket.Clone()
		return e
	})
}

func (b *Board) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

func (b *Board) Capacity() int {
	return b.capacity
}

// Store holds one board per session. Boards live only in memory.
type Store struct {
	mu       sync.RWMutex
	boards   map[string]*Board
	capacity int
}

func NewStore(capacity int) *Store {
	return &Store{
		boards:   make(map[string]*Board),
		capacity: capacity,
	}
}

// Create opens a new session and returns its ID.
func (s *Store) Create() string {
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.boards[id] = New(s.capacity)
	return id
}

func (s *Store) Get(id string) (*Board, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrSessionNotFound
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.boards[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return b, nil
}

func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.boards[id]; !ok {
		return ErrSessionNotFound
	}
	delete(s.boards, id)
	return nil
}

// Len returns the number of open sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.boards)
}
