package datastructure

import (
	"math/rand"
	"sort"
	"testing"
)

func TestMinHeapExtractsInRankOrder(t *testing.T) {
	h := NewFourAryHeap[NodeID]()

	ranks := make([]float64, 0, 100)
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		r := rng.Float64() * 1000
		ranks = append(ranks, r)
		h.Insert(NewPriorityQueueNode(r, NodeID(i)))
	}
	sort.Float64s(ranks)

	for i := 0; i < 100; i++ {
		node, err := h.ExtractMin()
		if err != nil {
			t.Fatalf("err: %v", err)
		}
		if node.GetRank() != ranks[i] {
			t.Fatalf("extract %d: rank = %v, want %v", i, node.GetRank(), ranks[i])
		}
	}

	if !h.IsEmpty() {
		t.Fatalf("heap not empty after extracting all items")
	}
}

func TestMinHeapDecreaseKey(t *testing.T) {
	h := NewBinaryHeap[NodeID]()

	a := NewPriorityQueueNode(10, NodeID(1))
	b := NewPriorityQueueNode(20, NodeID(2))
	c := NewPriorityQueueNode(30, NodeID(3))
	h.Insert(a)
	h.Insert(b)
	h.Insert(c)

	if err := h.DecreaseKey(c, 5); err != nil {
		t.Fatalf("err: %v", err)
	}

	node, err := h.ExtractMin()
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if node.GetItem() != 3 {
		t.Fatalf("min item = %v, want 3 after DecreaseKey", node.GetItem())
	}
}

func TestMinHeapDecreaseKeyRejectsIncrease(t *testing.T) {
	h := NewBinaryHeap[NodeID]()

	a := NewPriorityQueueNode(10, NodeID(1))
	h.Insert(a)

	if err := h.DecreaseKey(a, 50); err == nil {
		t.Fatalf("expected error increasing a key via DecreaseKey")
	}
}

func TestMinHeapExtractOnEmpty(t *testing.T) {
	h := NewBinaryHeap[NodeID]()

	if _, err := h.ExtractMin(); err == nil {
		t.Fatalf("expected error extracting from an empty heap")
	}
	if _, err := h.GetMin(); err == nil {
		t.Fatalf("expected error peeking an empty heap")
	}
}
