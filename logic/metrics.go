package logic

import (
	"fedisound/shared"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_metrics.go -package mocks fedisound/logic IMetrics,IRequestObserver

type IMetrics interface {
	StartWebRequestIn(label string) IRequestObserver
	StartApubRequestIn(label string) IRequestObserver
	StartApubRequestOut(label string) IRequestObserver
	ActivityReceived(label string)
	ActivityForwarded()
	TrackSaved()
	DeliveryFailed()
	ServiceStarted()
	TotalFollowers(count int)
	DeliverQueueLength(length int)
}

type IRequestObserver interface {
	Finish()
}

type metrics struct {
	cfg                 *shared.Config
	webRequestsIn       *prometheus.HistogramVec
	apubRequestsIn      *prometheus.HistogramVec
	apubRequestsOut     *prometheus.HistogramVec
	activitiesReceived  *prometheus.CounterVec
	activitiesForwarded prometheus.Counter
	tracksSaved         prometheus.Counter
	deliveriesFailed    prometheus.Counter
	serviceStarted      prometheus.Counter
	totalFollowers      prometheus.Gauge
	deliverQueueLength  prometheus.Gauge
}

func NewMetrics(cfg *shared.Config) IMetrics {

	res := metrics{}
	res.cfg = cfg

	res.webRequestsIn = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "web_requests_in_duration",
		Help: "Duration in seconds of Web requests served.",
	}, []string{"label"})
	prometheus.Register(res.webRequestsIn)

	res.apubRequestsIn = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "apub_requests_in_duration",
		Help: "Duration in seconds of ActivityPub requests served.",
	}, []string{"label"})
	prometheus.Register(res.apubRequestsIn)

	res.apubRequestsOut = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "apub_requests_out_duration",
		Help: "Duration in seconds of ActivityPub requests made.",
	}, []string{"label"})
	prometheus.Register(res.apubRequestsOut)

	res.activitiesReceived = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "activities_received",
		Help: "Number of inbound activities accepted, by type",
	}, []string{"label"})
	prometheus.Register(res.activitiesReceived)

	res.activitiesForwarded = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "activities_forwarded",
		Help: "Number of activities relayed to followers",
	})
	prometheus.Register(res.activitiesForwarded)

	res.tracksSaved = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tracks_saved",
		Help: "Number of new audio tracks saved",
	})
	prometheus.Register(res.tracksSaved)

	res.deliveriesFailed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "deliveries_failed",
		Help: "Number of deliveries dropped after permanent failure",
	})
	prometheus.Register(res.deliveriesFailed)

	res.serviceStarted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "service_started",
		Help: "Service has started up",
	})
	prometheus.Register(res.serviceStarted)

	res.totalFollowers = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "total_follower_count",
		Help: "Total follower count of local actors",
	})
	prometheus.Register(res.totalFollowers)

	res.deliverQueueLength = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "deliver_queue_length",
		Help: "Items in delivery queue",
	})
	prometheus.Register(res.deliverQueueLength)

	return &res
}

type requestObserver struct {
	label string
	start time.Time
	hgvec *prometheus.HistogramVec
}

func (ro *requestObserver) Finish() {
	now := time.Now()
	elapsed := float64(now.UnixMilli()-ro.start.UnixMilli()) / 1000.0
	ro.hgvec.WithLabelValues(ro.label).Observe(elapsed)
}

func (m *metrics) StartWebRequestIn(label string) IRequestObserver {
	return &requestObserver{label, time.Now(), m.webRequestsIn}
}

func (m *metrics) StartApubRequestIn(label string) IRequestObserver {
	return &requestObserver{label, time.Now(), m.apubRequestsIn}
}

func (m *metrics) StartApubRequestOut(label string) IRequestObserver {
	return &requestObserver{label, time.Now(), m.apubRequestsOut}
}

func (m *metrics) ActivityReceived(label string) {
	m.activitiesReceived.WithLabelValues(label).Add(1)
}

func (m *metrics) ActivityForwarded() {
	m.activitiesForwarded.Add(1)
}

func (m *metrics) TrackSaved() {
	m.tracksSaved.Add(1)
}

func (m *metrics) DeliveryFailed() {
	m.deliveriesFailed.Add(1)
}

func (m *metrics) ServiceStarted() {
	m.serviceStarted.Add(1)
}

func (m *metrics) TotalFollowers(count int) {
	m.totalFollowers.Set(float64(count))
}

func (m *metrics) DeliverQueueLength(length int) {
	m.deliverQueueLength.Set(float64(length))
}
