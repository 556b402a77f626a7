// Command bbstdemo exercises rbtree and avltree side by side: build a
// 1000-key order-statistics tree from a shuffled permutation, print it back
// in order, look up a rank with FindByOrder, and split it around a pivot
// key. It mirrors the reference implementation's own main.cpp walkthrough.
package main

import (
	"log"
	"math/rand"

	"github.com/clonemasterUwU/bbst/augment"
	"github.com/clonemasterUwU/bbst/avltree"
	"github.com/clonemasterUwU/bbst/rbtree"
)

const n = 1000

func shuffledPermutation(size int) []int {
	s := make([]int, size)
	for i := range s {
		s[i] = i
	}

	rand.New(rand.NewSource(0)).Shuffle(size, func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})

	return s
}

func main() {
	s := shuffledPermutation(n)

	rb := rbtree.NewOrdered[int, int](augment.OrderStatistic[int, int]{})
	avl := avltree.NewOrdered[int, int](augment.OrderStatistic[int, int]{})

	for _, i := range s {
		rb.TryEmplace(i, i)
		avl.TryEmplace(i, i)
	}

	log.Printf("rbtree in-order keys: %v", rb.Keys())
	log.Printf("avltree in-order keys: %v", avl.Keys())

	if node, ok := rbtree.FindByOrder(rb, 723); ok {
		log.Printf("rbtree FindByOrder(723): key=%d", node.Key())
	}

	rbLeft, rbRight := rbtree.Split(rb, 126, true)
	log.Printf("rbtree Split(126, equalOnLeft=true): left=%v", rbLeft.Keys())
	log.Printf("rbtree Split(126, equalOnLeft=true): right=%v", rbRight.Keys())

	avlLeft, avlRight := avltree.Split(avl, 126, true)
	log.Printf("avltree Split(126, equalOnLeft=true): left=%v", avlLeft.Keys())
	log.Printf("avltree Split(126, equalOnLeft=true): right=%v", avlRight.Keys())

	// rbLeft still holds 126; split it off so 126 can serve as Join's pivot.
	rbLeft, _ = rbtree.Split(rbLeft, 126, false)
	rejoined := rbtree.Join(rbLeft, 126, 126, rbRight)
	log.Printf("rbtree Join back together: size=%d", rbtree.Size(rejoined))
}
