// Package session contains the cash Session aggregate (one agent's
// cash-handling period at one agency) and the append-only LedgerEntry entity
// describing money collected against shipments in that session.
//
// A session moves through PENDING -> ACTIVE -> CLOSED -> VALIDATED. The
// expected amount is never hand-entered: it is recomputed at close time as a
// live sum over the shipments linked to the session. Validation stores the
// accountant's counted amount and the signed difference (counted - expected),
// after which the session is immutable for ledger purposes.
//
// At most one session per agent may be PENDING or ACTIVE at any time; the
// session opening command enforces this inside one transaction.
package session
