// Package messaging carries saga events between participants over Kafka.
package messaging

import "strings"

// Saga topics. Each topic carries exactly one event type.
const (
	TopicOrderCreated      = "order-created"
	TopicOrderCancelled    = "order-cancelled"
	TopicInventoryReserved = "inventory-reserved"
	TopicInventoryFailed   = "inventory-failed"
	TopicPaymentSuccess    = "payment-success"
	TopicPaymentFailed     = "payment-failed"
	TopicRefundRequested   = "refund-requested"
	TopicRefundSuccess     = "refund-success"
	TopicRefundFailed      = "refund-failed"
)

// DLTSuffix is appended to a topic name to form its dead-letter topic.
const DLTSuffix = ".DLT"

// Message headers set by the relay and the dead-letter path.
const (
	HeaderContractVersion = "event-contract-version"
	HeaderEventType       = "event-type"
	HeaderEventKey        = "event-key"

	HeaderDLTOriginalTopic     = "dlt-original-topic"
	HeaderDLTOriginalPartition = "dlt-original-partition"
	HeaderDLTOriginalOffset    = "dlt-original-offset"
	HeaderDLTExceptionMessage  = "dlt-exception-message"
	HeaderDLTTimestamp         = "dlt-timestamp"
)

// DefaultContractVersion is used for topics without an explicit version.
const DefaultContractVersion = "v1"

var topicVersions = map[string]string{
	TopicOrderCreated:      "v1",
	TopicOrderCancelled:    "v1",
	TopicInventoryReserved: "v1",
	TopicInventoryFailed:   "v1",
	TopicPaymentSuccess:    "v1",
	TopicPaymentFailed:     "v1",
	TopicRefundRequested:   "v1",
	TopicRefundSuccess:     "v1",
	TopicRefundFailed:      "v1",
}

// ContractVersion returns the payload contract version published on topic.
func ContractVersion(topic string) string {
	if version, ok := topicVersions[topic]; ok {
		return version
	}
	return DefaultContractVersion
}

// DLTTopic returns the dead-letter topic for topic.
func DLTTopic(topic string) string {
	return topic + DLTSuffix
}

// OriginalTopic strips the dead-letter suffix from a topic name.
func OriginalTopic(dltTopic string) string {
	return strings.TrimSuffix(dltTopic, DLTSuffix)
}
