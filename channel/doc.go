// Package channel serializes requests to an AF9035 bridge over one bulk pipe.
//
// A Channel owns the transport, the exclusive lock and the 8-bit sequence
// counter for one physical device. Every request, whether a register access,
// a proxied tuner access or a firmware chunk, goes through Execute:
//
//	ch := channel.New(transport, channel.WithLogger(logger))
//
//	buf := make([]byte, 1)
//	err := ch.Execute(ctx, protocol.RegisterRead(protocol.MailboxLink, 0xd800, buf))
//
// There is no retry and no pipelining. A caller whose context is done before
// it gets the lock receives protocol.ErrWouldBlock.
package channel
