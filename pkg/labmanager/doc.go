// Package labmanager is a client for the VMware Lab Manager SOAP web
// service. It binds the public (LabManager.asmx) and internal
// (LabManagerInternal.asmx) endpoints to Go methods: configuration
// lifecycle (checkout, deploy, undeploy, capture, clone, delete), machine
// power actions, and inventory queries over workspaces, organizations,
// templates, networks and users.
//
// Every call carries an AuthenticationHeader built from the client's
// current session (username, password, organization, workspace). Session
// fields may be changed after construction with Configure, which rebuilds
// both endpoint bindings and the credential header before the next call.
//
// Errors fall into three kinds, all inspectable with errors.As:
//
//   - *CallerError: invalid or missing arguments, rejected before any
//     network traffic.
//   - *TransportError: the channel could not be established or timed out.
//   - *Fault: the service reported a structured failure.
//
// No error is ever retried by the library; several operations are not
// idempotent, so retry policy belongs to the caller.
//
// With fail-fast enabled (the default) a fault is only returned as the
// call's error. With fail-fast disabled the fault is additionally recorded
// on the client and available through GetLastError, which suits embedded
// use where call sites log-and-continue.
//
// A Client performs synchronous, blocking calls and has no internal
// locking. Concurrent calls on one instance are only safe as long as no
// goroutine mutates the session via Configure at the same time; either
// serialize configuration changes or use one client per credential
// context.
package labmanager
