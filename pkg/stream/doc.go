/*
Package stream provides the in-memory multicast channels the calculator is wired with.

Two flavours exist:

  - Relay: forwards live emissions to every current subscriber.
  - Subject: a Relay that also caches the latest value and replays it to each
    new subscriber immediately on Subscribe.

Delivery is synchronous. Send calls every subscriber inline, in subscription
order, on the calling goroutine, and returns once all of them have returned.
Subscriber lists are guarded so that Unsubscribe can be called from any
goroutine, including from inside a callback.
*/
package stream
