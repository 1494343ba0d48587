package curve

// nilNode marks an absent child or an empty tree.
const nilNode int32 = -1

type node struct {
	key   int
	left  int32
	right int32
}

// tree is an unbalanced binary search tree over period keys. Nodes live in an
// arena and reference each other by index; freed slots are reused.
//
// All walks are iterative: bootstrapping inserts periods in ascending order,
// which degenerates the tree into a right spine of height n.
type tree struct {
	nodes []node
	free  []int32
	root  int32
}

func newTree() tree {
	return tree{root: nilNode}
}

func (t *tree) alloc(key int) int32 {
	n := node{key: key, left: nilNode, right: nilNode}
	if k := len(t.free); k > 0 {
		idx := t.free[k-1]
		t.free = t.free[:k-1]
		t.nodes[idx] = n
		return idx
	}
	t.nodes = append(t.nodes, n)
	return int32(len(t.nodes) - 1)
}

func (t *tree) release(idx int32) {
	t.nodes[idx] = node{left: nilNode, right: nilNode}
	t.free = append(t.free, idx)
	if t.root == nilNode {
		t.nodes = t.nodes[:0]
		t.free = t.free[:0]
	}
}

// insert adds key as a new leaf. It reports false, leaving the tree untouched,
// when key is already present.
func (t *tree) insert(key int) bool {
	if t.root == nilNode {
		t.root = t.alloc(key)
		return true
	}

	cur := t.root
	for {
		n := t.nodes[cur]
		switch {
		case key < n.key:
			if n.left == nilNode {
				idx := t.alloc(key)
				t.nodes[cur].left = idx
				return true
			}
			cur = n.left
		case key > n.key:
			if n.right == nilNode {
				idx := t.alloc(key)
				t.nodes[cur].right = idx
				return true
			}
			cur = n.right
		default:
			return false
		}
	}
}

// below returns the greatest key strictly less than key.
func (t *tree) below(key int) (int, bool) {
	closest, found := 0, false
	for cur := t.root; cur != nilNode; {
		n := t.nodes[cur]
		if n.key < key {
			closest, found = n.key, true
			cur = n.right
		} else {
			cur = n.left
		}
	}
	return closest, found
}

// above returns the smallest key strictly greater than key.
func (t *tree) above(key int) (int, bool) {
	closest, found := 0, false
	for cur := t.root; cur != nilNode; {
		n := t.nodes[cur]
		if n.key > key {
			closest, found = n.key, true
			cur = n.left
		} else {
			cur = n.right
		}
	}
	return closest, found
}

// remove deletes key and reports whether it was present. A node with two
// children takes the key of its in-order predecessor, which is then unlinked
// from the left subtree.
func (t *tree) remove(key int) bool {
	parent, cur := nilNode, t.root
	for cur != nilNode && t.nodes[cur].key != key {
		parent = cur
		if key < t.nodes[cur].key {
			cur = t.nodes[cur].left
		} else {
			cur = t.nodes[cur].right
		}
	}
	if cur == nilNode {
		return false
	}

	n := t.nodes[cur]
	if n.left != nilNode && n.right != nilNode {
		predParent, pred := cur, n.left
		for t.nodes[pred].right != nilNode {
			predParent, pred = pred, t.nodes[pred].right
		}
		t.nodes[cur].key = t.nodes[pred].key
		t.relink(predParent, pred, t.nodes[pred].left)
		t.release(pred)
		return true
	}

	child := n.left
	if child == nilNode {
		child = n.right
	}
	t.relink(parent, cur, child)
	t.release(cur)
	return true
}

// relink points parent's edge to old at repl instead.
func (t *tree) relink(parent, old, repl int32) {
	if parent == nilNode {
		t.root = repl
		return
	}
	if t.nodes[parent].left == old {
		t.nodes[parent].left = repl
	} else {
		t.nodes[parent].right = repl
	}
}

// ascend calls fn for each key in increasing order until fn returns false.
func (t *tree) ascend(fn func(key int) bool) {
	var stack []int32
	cur := t.root
	for cur != nilNode || len(stack) > 0 {
		for cur != nilNode {
			stack = append(stack, cur)
			cur = t.nodes[cur].left
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(t.nodes[cur].key) {
			return
		}
		cur = t.nodes[cur].right
	}
}

// max returns the greatest key, following the right spine.
func (t *tree) max() (int, bool) {
	if t.root == nilNode {
		return 0, false
	}
	cur := t.root
	for t.nodes[cur].right != nilNode {
		cur = t.nodes[cur].right
	}
	return t.nodes[cur].key, true
}

func (t *tree) clone() tree {
	c := tree{root: t.root}
	c.nodes = append([]node(nil), t.nodes...)
	c.free = append([]int32(nil), t.free...)
	return c
}
