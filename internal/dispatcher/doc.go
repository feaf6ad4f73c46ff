// Package dispatcher binds keyboard actions to the selection store,
// mutation engine and clipboard transport, and forwards each resulting
// document snapshot to the host editor's single dispatch channel.
//
// The dispatcher owns policy, not mechanics: which ids take part in an
// operation, whether a bulk delete needs confirmation, how the
// two-stage select-all escalates, and where a paste lands. The pure
// engine functions never dispatch; the dispatcher is the only writer
// on the host channel, which is what makes locking unnecessary for
// the tree itself.
//
// The one asynchronous path is pasting from the OS clipboard. The
// read resolves after an arbitrary delay, so its completion handler
// re-fetches the current document and selection through the providers
// instead of using values captured at key-press time; an intervening
// edit must not be overwritten by a stale snapshot.
package dispatcher
