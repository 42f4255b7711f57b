/*
Package layout associates page content with the layout it should render inside.

A Content exposes its body and its Layout. Resolution is a two-tier lookup with
no state machine: an explicitly chosen layout wins, otherwise the publishing
context's default layout is read at the moment Layout is called.

The publishing context is passed in explicitly. Only the outermost entry point
(folio.NewPage) falls back to the process-wide default, so tests can always
inject their own.
*/
package layout
