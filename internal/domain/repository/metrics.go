package repository

// NopMetrics discards all measurements. Used in tests.
type NopMetrics struct{}

func (NopMetrics) RecordSignalRouted(providerID, symbol string) {}
func (NopMetrics) RecordDelivery(transport, result string)      {}
func (NopMetrics) RecordObserverEvent(kind string)              {}
func (NopMetrics) RecordError(kind string)                      {}
func (NopMetrics) RecordPollCycle(seconds float64)              {}
func (NopMetrics) SetConnectedAccounts(n int)                   {}
func (NopMetrics) SetObservers(n int)                           {}
