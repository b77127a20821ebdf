// Package services contains the core application logic, implementing the
// driving ports over the driven ports. Services are infrastructure-free:
// they orchestrate corpus loading, vectorization, similarity scoring, and
// ranking without knowing about CSV files, SQLite, or HTTP.
package services
