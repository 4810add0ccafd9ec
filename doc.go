/*
Package conftree implements a recursive, ordered configuration container:
a tree of key/value entries in which every nested composite value is itself
a *Tree, so that traversal, keyed access and mutation work the same way at
every depth.

We implement:

1. Tree, the ordered key/value container. Keys are names or auto-assigned
non-negative integer indexes, insertion order is preserved and drives
iteration, and every composite written into the tree is normalized into a
nested *Tree by a single conversion function shared by all write paths.

2. A stateful forward cursor per instance (Reset/CurrentKey/CurrentValue/
Advance/Valid), plus an independent Items sequence for callers that want
ordinary range-over-func iteration.

3. Sources, the load collaborators that supply raw nested data to Tree.Load:
an in-memory map, a directory of JSON/YAML files, and a Bolt-backed store of
msgpack-encoded documents.

4. A codec (MsgPack and JSON) between trees and their plain exported form.

# Technical Details

**Values.**
A Value is a tagged union: a scalar, a nested *Tree, or missing. The zero
Value is the missing sentinel, so lookups and cursor reads never fail and a
stored zero or empty scalar is never mistaken for absence.

**Size accounting.**
Every mutation marks a dirty flag; Count recomputes the cached entry count
only when the flag is set. Construction computes the count once, so Count on
a freshly built tree is side-effect free.

**Ownership.**
A tree owns its child trees by reference, parent to child, with no sharing
and no cycles: conversion only ever wraps freshly supplied external data.
Clone produces recursively independent copies.

Trees are not safe for concurrent use; callers embedding one in a concurrent
host must serialize access to each instance.
*/
package conftree
