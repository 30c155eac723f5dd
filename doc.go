// Package textqueue provides a queue/deque of string values built on a
// sentinel-anchored circular intrusive doubly linked list.
//
// Elements may be inserted and removed at either end, and the queue supports
// a set of in-place bulk transformations: middle deletion, duplicate-run
// deletion on sorted input, pairwise swapping, reversal, and a stable merge
// sort. The transformations work purely by relinking; reversal and swapping
// never allocate and preserve element identity.
//
// Removal and release are distinct steps. RemoveHead and RemoveTail unlink an
// element and hand it to the caller, who then owns it and is responsible for
// calling Release once done with it. The deleting transformations release the
// elements they unlink themselves, and Destroy releases everything still in
// the queue. Allocation accounting (internal/telemetry) makes this contract
// checkable: after a Destroy, a queue whose removed elements were all
// released reports no live elements.
//
// A Queue is not safe for concurrent use; callers serialise access.
package textqueue
