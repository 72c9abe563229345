// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package avl provides a generic AVL tree ordered by a caller supplied
// comparison function, with predicate driven traversals on top of it.
package avl

import (
	"errors"
	"fmt"
	"io"
)

// ErrRemoveUnsupported is returned by Remove. The tree is never modified.
var ErrRemoveUnsupported = errors.New("avl: remove is not supported")

// Compare returns a negative number when a < b, zero when a == b and a
// positive number when a > b.
type Compare[T any] func(a, b T) int

// Predicate selects elements during a traversal.
type Predicate[T any] func(item T) bool

// Direction tells DirectedSearch where to continue from a node whose
// element did not satisfy the predicate.
type Direction int

const (
	// Stop ends the search below the current node.
	Stop Direction = iota
	// DescendLeft continues in the left subtree only.
	DescendLeft
	// DescendRight continues in the right subtree only.
	DescendRight
)

func (d Direction) String() string {
	switch d {
	case DescendLeft:
		return "left"
	case DescendRight:
		return "right"
	default:
		return "stop"
	}
}

// Steer picks a Direction for a non matching element.
type Steer[T any] func(item T) Direction

type AVLTreeIFace[T any] interface {
	Insert(item T) bool
	Remove(item T) error
	Find(item T) (T, bool)
	FindMin() (T, bool)
	FindMax() (T, bool)
	CountIf(p Predicate[T]) int
	CollectIf(p Predicate[T]) []T
	DirectedSearch(p Predicate[T], steer Steer[T]) []T
}

// AVLTree is not safe for concurrent mutation.
type AVLTree[T any] struct {
	Root    *AVLNode[T]
	compare Compare[T]
	size    int
}

var _ AVLTreeIFace[int] = (*AVLTree[int])(nil)

func NewAVLTree[T any](compare Compare[T]) *AVLTree[T] {
	return &AVLTree[T]{Root: nil, compare: compare}
}

// Len returns the number of stored elements.
func (tree *AVLTree[T]) Len() int {
	return tree.size
}

func (tree *AVLTree[T]) IsEmpty() bool {
	return tree.Root == nil
}

// Height returns -1 for an empty tree and 0 for a single node.
func (tree *AVLTree[T]) Height() int {
	return height(tree.Root)
}

// MakeEmpty drops every node.
func (tree *AVLTree[T]) MakeEmpty() {
	tree.Root = nil
	tree.size = 0
}

// Clone returns a deep copy sharing no nodes with tree.
func (tree *AVLTree[T]) Clone() *AVLTree[T] {
	return &AVLTree[T]{
		Root:    tree.Root.clone(),
		compare: tree.compare,
		size:    tree.size,
	}
}

func (tree *AVLTree[T]) rotateLeft(node *AVLNode[T]) *AVLNode[T] {
	if node == nil || node.Right == nil {
		return node
	}

	pivot := node.Right

	node.Right = pivot.Left
	pivot.Left = node

	node.updateHeight()
	pivot.updateHeight()

	return pivot
}

func (tree *AVLTree[T]) rotateRight(node *AVLNode[T]) *AVLNode[T] {
	if node == nil || node.Left == nil {
		return node
	}

	pivot := node.Left

	node.Left = pivot.Right
	pivot.Right = node

	node.updateHeight()
	pivot.updateHeight()

	return pivot
}

// Insert adds item unless an element comparing equal is already stored,
// in which case it returns false and leaves the tree untouched.
func (tree *AVLTree[T]) Insert(item T) bool {
	var inserted bool
	tree.Root = tree.insertRecursive(tree.Root, item, &inserted)
	if inserted {
		tree.size++
	}
	return inserted
}

func (tree *AVLTree[T]) insertRecursive(node *AVLNode[T], item T, inserted *bool) *AVLNode[T] {
	if node == nil {
		*inserted = true
		return &AVLNode[T]{Item: item, Height: 0}
	}

	c := tree.compare(item, node.Item)
	switch {
	case c < 0:
		node.Left = tree.insertRecursive(node.Left, item, inserted)
	case c > 0:
		node.Right = tree.insertRecursive(node.Right, item, inserted)
	default:
		return node
	}

	if !*inserted {
		return node
	}

	node.updateHeight()

	balanceFactor := node.balanceFactor()
	if balanceFactor > 1 {
		if tree.compare(item, node.Left.Item) < 0 {
			return tree.rotateRight(node)
		}
		// Left-Right case
		node.Left = tree.rotateLeft(node.Left)
		return tree.rotateRight(node)
	} else if balanceFactor < -1 {
		if tree.compare(item, node.Right.Item) > 0 {
			return tree.rotateLeft(node)
		}
		// Right-Left case
		node.Right = tree.rotateRight(node.Right)
		return tree.rotateLeft(node)
	}

	return node
}

// Remove always fails with ErrRemoveUnsupported.
func (tree *AVLTree[T]) Remove(item T) error {
	return ErrRemoveUnsupported
}

// Find looks for the element comparing equal to item.
func (tree *AVLTree[T]) Find(item T) (T, bool) {
	node := tree.Root
	for node != nil {
		c := tree.compare(item, node.Item)
		if c < 0 {
			node = node.Left
		} else if c > 0 {
			node = node.Right
		} else {
			return node.Item, true
		}
	}
	var zero T
	return zero, false
}

func (tree *AVLTree[T]) FindMin() (T, bool) {
	var zero T
	if tree.Root == nil {
		return zero, false
	}
	node := tree.Root
	for node.Left != nil {
		node = node.Left
	}
	return node.Item, true
}

func (tree *AVLTree[T]) FindMax() (T, bool) {
	var zero T
	if tree.Root == nil {
		return zero, false
	}
	node := tree.Root
	for node.Right != nil {
		node = node.Right
	}
	return node.Item, true
}

// CountIf visits every node once.
func (tree *AVLTree[T]) CountIf(p Predicate[T]) int {
	return countIf(tree.Root, p)
}

func countIf[T any](node *AVLNode[T], p Predicate[T]) int {
	if node == nil {
		return 0
	}
	n := countIf(node.Left, p) + countIf(node.Right, p)
	if p(node.Item) {
		n++
	}
	return n
}

// CollectIf returns the matching elements in ascending order.
func (tree *AVLTree[T]) CollectIf(p Predicate[T]) []T {
	var results []T
	collectIf(tree.Root, p, &results)
	return results
}

func collectIf[T any](node *AVLNode[T], p Predicate[T], results *[]T) {
	if node == nil {
		return
	}
	collectIf(node.Left, p, results)
	if p(node.Item) {
		*results = append(*results, node.Item)
	}
	collectIf(node.Right, p, results)
}

// DirectedSearch collects matching elements in ascending order, like
// CollectIf, but only follows the subtree chosen by steer below a node that
// does not match. A matching node has both subtrees searched. The result
// equals CollectIf(p) whenever the matching elements form a contiguous run
// of the ordering and steer points towards that run.
func (tree *AVLTree[T]) DirectedSearch(p Predicate[T], steer Steer[T]) []T {
	var results []T
	directedSearch(tree.Root, p, steer, &results)
	return results
}

func directedSearch[T any](node *AVLNode[T], p Predicate[T], steer Steer[T], results *[]T) {
	if node == nil {
		return
	}

	if p(node.Item) {
		directedSearch(node.Left, p, steer, results)
		*results = append(*results, node.Item)
		directedSearch(node.Right, p, steer, results)
		return
	}

	switch steer(node.Item) {
	case DescendLeft:
		directedSearch(node.Left, p, steer, results)
	case DescendRight:
		directedSearch(node.Right, p, steer, results)
	}
}

// Ascend walks the tree in order until visit returns false.
func (tree *AVLTree[T]) Ascend(visit func(item T) bool) {
	ascend(tree.Root, visit)
}

func ascend[T any](node *AVLNode[T], visit func(item T) bool) bool {
	if node == nil {
		return true
	}
	if !ascend(node.Left, visit) {
		return false
	}
	if !visit(node.Item) {
		return false
	}
	return ascend(node.Right, visit)
}

// WriteTo prints one element per line in ascending order using the %v verb.
func (tree *AVLTree[T]) WriteTo(w io.Writer) (int64, error) {
	var written int64
	var err error
	tree.Ascend(func(item T) bool {
		var n int
		n, err = fmt.Fprintln(w, item)
		written += int64(n)
		return err == nil
	})
	return written, err
}
