// SPDX-License-Identifier: MIT

package sorting

import (
	"slices"

	"github.com/katalvlaran/sortsteps/step"
)

var treeListing = []string{
	"func treeSort(a []float64) {",
	"  var root *node",
	"  for i, v := range a {",
	"    root = insert(root, v, i)",
	"  }",
	"  k := 0",
	"  inorder(root, a, &k)",
	"}",
	"",
	"func insert(n *node, v float64, i int) *node {",
	"  if n == nil {",
	"    return &node{key: v, idx: i}",
	"  }",
	"  if v < n.key {",
	"    n.left = insert(n.left, v, i)",
	"  } else {",
	"    n.right = insert(n.right, v, i)",
	"  }",
	"  return n",
	"}",
	"",
	"func inorder(n *node, a []float64, k *int) {",
	"  if n == nil {",
	"    return",
	"  }",
	"  inorder(n.left, a, k)",
	"  a[*k] = n.key",
	"  *k++",
	"  inorder(n.right, a, k)",
	"}",
}

const (
	treeLineInsert   = 4
	treeLineTraverse = 7
	treeLineAttach   = 12
	treeLineCompare  = 14
	treeLineStore    = 27
)

// treeNode is a BST node local to one run. idx is the node's original
// position, kept only to highlight it; ordering uses key alone.
type treeNode struct {
	key         float64
	idx         int
	left, right *treeNode
}

// treeSort builds a BST by sequential insertion (duplicates go right) and
// writes it back in order.
//
// While the tree is built the buffer is untouched, so original indices are
// valid highlight targets. During the traversal the buffer reads
// placed ++ unplaced originals in original order: storing a key rotates it
// from its current slot down to the next output position.
func treeSort(t *tracer) {
	var root *treeNode
	for i := 0; i < t.n() && !t.stopped(); i++ {
		t.emit(treeLineInsert, step.Insertion{Key: i}, "Insert %s into the tree", fv(t.buf[i]))
		root = treeInsert(t, root, i)
	}

	t.emit(treeLineTraverse, step.None{}, "In-order traversal writes the keys back")
	pending := make([]int, t.n())
	for i := range pending {
		pending[i] = i
	}
	k := 0
	treeStore(t, root, pending, &k)
}

// treeInsert walks down from root and attaches buf[i]. Iterative, so a
// sorted input (a linked list of a tree) does not grow the stack.
func treeInsert(t *tracer, root *treeNode, i int) *treeNode {
	v := t.buf[i]
	leaf := &treeNode{key: v, idx: i}
	if root == nil {
		t.emit(treeLineAttach, step.Insertion{Key: i}, "%s becomes the root", fv(v))
		return leaf
	}

	for cur := root; ; {
		t.emitNotes(treeLineCompare, step.Compare(cur.idx, i), t.compareNotes(cur.idx, i),
			"Is %s < node %s?", fv(v), fv(cur.key))
		if t.less(v, cur.key) {
			if cur.left == nil {
				cur.left = leaf
				t.emit(treeLineAttach, step.Insertion{Key: i}, "%s attached left of %s", fv(v), fv(cur.key))
				return root
			}
			cur = cur.left
		} else {
			if cur.right == nil {
				cur.right = leaf
				t.emit(treeLineAttach, step.Insertion{Key: i}, "%s attached right of %s", fv(v), fv(cur.key))
				return root
			}
			cur = cur.right
		}
	}
}

// treeStore writes the subtree rooted at n in order. pending lists the
// original indices not yet stored, in original order; pending[p] currently
// sits at buffer position *k+p.
func treeStore(t *tracer, n *treeNode, pending []int, k *int) []int {
	if n == nil || t.stopped() {
		return pending
	}
	pending = treeStore(t, n.left, pending, k)

	p := slices.Index(pending, n.idx)
	t.rotate(*k, *k+p)
	pending = slices.Delete(pending, p, p+1)
	t.emit(treeLineStore, step.Insertion{Key: *k}, "Stored %s at index %d", fv(n.key), *k)
	*k++

	return treeStore(t, n.right, pending, k)
}
