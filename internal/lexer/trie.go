package lexer

// trieNode is one edge target of the symbol prefix tree.
type trieNode struct {
	children map[rune]*trieNode
	terminal bool
}

// Trie recognises the longest symbol starting at a position.
type Trie struct {
	root *trieNode
}

// NewTrie builds a prefix tree over words.
func NewTrie(words []string) *Trie {
	t := &Trie{root: &trieNode{children: make(map[rune]*trieNode)}}
	for _, w := range words {
		t.Insert(w)
	}
	return t
}

// Insert adds word to the tree. Empty words are ignored.
func (t *Trie) Insert(word string) {
	if word == "" {
		return
	}
	node := t.root
	for _, r := range word {
		child, ok := node.children[r]
		if !ok {
			child = &trieNode{children: make(map[rune]*trieNode)}
			node.children[r] = child
		}
		node = child
	}
	node.terminal = true
}

// Find walks src from cursor and returns the longest inserted word that is a
// prefix of src[cursor:], or "" when none is.
func (t *Trie) Find(src []rune, cursor int) string {
	node := t.root
	longest := 0
	for i := cursor; i < len(src); i++ {
		child, ok := node.children[src[i]]
		if !ok {
			break
		}
		node = child
		if node.terminal {
			longest = i - cursor + 1
		}
	}
	return string(src[cursor : cursor+longest])
}
