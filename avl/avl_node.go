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

package avl

// AVLNode owns both of its subtrees. Height of a leaf is 0, of an absent child -1.
type AVLNode[T any] struct {
	Item   T
	Height int
	Left   *AVLNode[T]
	Right  *AVLNode[T]
}

func height[T any](node *AVLNode[T]) int {
	if node == nil {
		return -1
	}
	return node.Height
}

func (node *AVLNode[T]) updateHeight() {
	node.Height = max(height(node.Left), height(node.Right)) + 1
}

func (node *AVLNode[T]) balanceFactor() int {
	return height(node.Left) - height(node.Right)
}

// clone copies the whole subtree rooted at node.
func (node *AVLNode[T]) clone() *AVLNode[T] {
	if node == nil {
		return nil
	}
	return &AVLNode[T]{
		Item:   node.Item,
		Height: node.Height,
		Left:   node.Left.clone(),
		Right:  node.Right.clone(),
	}
}
