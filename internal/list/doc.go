// Package list provides a sentinel-anchored circular intrusive doubly linked
// list. The sentinel carries no payload; an empty list is a sentinel linked to
// itself, and a non-empty list is a closed cycle in which prev is the exact
// inverse of next for every link.
//
// Nodes are intrusive: the owning value embeds a Node and registers itself as
// the node's owner, so a traversal that yields nodes can recover the enclosing
// value without any offset arithmetic.
//
// Beyond the structural operations, nodes expose their raw link fields through
// SetNext and SetPrev. Callers that temporarily detach the cycle into an
// acyclic chain (for example a merge sort over next links) use these and are
// responsible for restoring the circular invariant before handing the list
// back to structural operations.
package list
