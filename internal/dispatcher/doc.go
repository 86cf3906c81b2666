// Package dispatcher routes action messages to the store.
//
// A Dispatcher holds exactly one handler, registered once at the application
// root. Dispatch calls it synchronously on the caller's goroutine and returns
// after the handler, including any change notifications it triggers, has
// finished.
//
// # Usage constraint
//
// Dispatch is not re-entrant. A handler, or a listener notified by the
// handler, must not call Dispatch while a dispatch is in progress. Views
// react to change notifications by re-rendering, never by dispatching.
//
// # Diagnostics
//
// With TraceActions enabled every action is logged at debug level in its
// wire shape (see action.Encode), tagged with a "seq" field counting traced
// dispatches. With EnableMetrics enabled the dispatcher
// counts dispatches and their durations per action type.
package dispatcher
