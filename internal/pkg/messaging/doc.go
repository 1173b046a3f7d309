// Package messaging publishes and consumes domain events (application
// submitted, admin credential changed) over a broker chosen by configuration:
// Kafka, NATS, NSQ, Google Pub/Sub, or an in-process memory broker for local
// runs and tests.
package messaging
