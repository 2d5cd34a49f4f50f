package datastructure

type PriorityQueueNode[T any] struct {
	Rank float64
	Item T
}

func NewPriorityQueueNode[T any](rank float64, item T) PriorityQueueNode[T] {
	return PriorityQueueNode[T]{Rank: rank, Item: item}
}

// LessFunc orders two queue entries; the smallest entry is extracted first.
type LessFunc[T any] func(a, b PriorityQueueNode[T]) bool

// ByRank orders entries by increasing Rank.
func ByRank[T any](a, b PriorityQueueNode[T]) bool {
	return a.Rank < b.Rank
}

// MinHeap binary heap priorityqueue. Ordering comes from the comparator given
// to NewMinHeap, not from the items.
type MinHeap[T any] struct {
	heap []PriorityQueueNode[T]
	less LessFunc[T]
}

// NewMinHeap creates an empty heap. A nil less falls back to ByRank.
func NewMinHeap[T any](less LessFunc[T]) *MinHeap[T] {
	if less == nil {
		less = ByRank[T]
	}
	return &MinHeap[T]{
		heap: make([]PriorityQueueNode[T], 0),
		less: less,
	}
}

// parent get index dari parent
func (h *MinHeap[T]) parent(index int) int {
	return (index - 1) / 2
}

func (h *MinHeap[T]) leftChild(index int) int {
	return 2*index + 1
}

func (h *MinHeap[T]) rightChild(index int) int {
	return 2*index + 2
}

// heapifyUp swaps index with its parent while it orders before it. O(logN).
func (h *MinHeap[T]) heapifyUp(index int) {
	for index != 0 && h.less(h.heap[index], h.heap[h.parent(index)]) {
		h.heap[index], h.heap[h.parent(index)] = h.heap[h.parent(index)], h.heap[index]
		index = h.parent(index)
	}
}

// heapifyDown swaps index with its smallest child until the heap property holds. O(logN).
func (h *MinHeap[T]) heapifyDown(index int) {
	for {
		smallest := index
		left := h.leftChild(index)
		right := h.rightChild(index)

		if left < len(h.heap) && h.less(h.heap[left], h.heap[smallest]) {
			smallest = left
		}
		if right < len(h.heap) && h.less(h.heap[right], h.heap[smallest]) {
			smallest = right
		}
		if smallest == index {
			return
		}
		h.heap[index], h.heap[smallest] = h.heap[smallest], h.heap[index]
		index = smallest
	}
}

func (h *MinHeap[T]) IsEmpty() bool {
	return len(h.heap) == 0
}

func (h *MinHeap[T]) Size() int {
	return len(h.heap)
}

// GetMin returns the smallest entry without removing it.
func (h *MinHeap[T]) GetMin() (PriorityQueueNode[T], bool) {
	if h.IsEmpty() {
		return PriorityQueueNode[T]{}, false
	}
	return h.heap[0], true
}

func (h *MinHeap[T]) Insert(item PriorityQueueNode[T]) {
	h.heap = append(h.heap, item)
	h.heapifyUp(len(h.heap) - 1)
}

// ExtractMin removes and returns the smallest entry. O(logN).
func (h *MinHeap[T]) ExtractMin() (PriorityQueueNode[T], bool) {
	if h.IsEmpty() {
		return PriorityQueueNode[T]{}, false
	}
	root := h.heap[0]
	last := len(h.heap) - 1
	h.heap[0] = h.heap[last]
	h.heap[last] = PriorityQueueNode[T]{}
	h.heap = h.heap[:last]
	h.heapifyDown(0)

	return root, true
}
