package eventbus

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

var (
	ErrPublishChannelFull = errors.New("publish channel full")
	ErrClosed             = errors.New("eventbus closed")
)

type Config struct {
	IncomingBuffer    int
	SubscribeBuffer   int
	UnsubscribeBuffer int
	ChannelBuffer     int
	CacheTTL          time.Duration
}

var DefaultConfig = &Config{
	IncomingBuffer:    1000,
	SubscribeBuffer:   100,
	UnsubscribeBuffer: 100,
	ChannelBuffer:     50,
	CacheTTL:          time.Minute,
}

type EBusMessage struct {
	Topic string
	Data  float64
}

// Controller fans published values out to topic subscribers. The latest value
// of every topic is cached so new subscribers start with it.
type Controller struct {
	subs     map[string][]chan float64
	incoming chan EBusMessage
	sub      chan newSub
	unsub    chan chan float64
	cache    *ttlcache.Cache[string, float64]

	channelBuffer int

	closeOnce sync.Once
	quit      chan struct{}
	done      chan struct{}
}

type newSub struct {
	topic string
	resp  chan float64
}

func New(cfg *Config) *Controller {
	if cfg == nil {
		cfg = DefaultConfig
	}

	c := &Controller{
		subs:          make(map[string][]chan float64),
		incoming:      make(chan EBusMessage, cfg.IncomingBuffer),
		sub:           make(chan newSub, cfg.SubscribeBuffer),
		unsub:         make(chan chan float64, cfg.UnsubscribeBuffer),
		cache:         ttlcache.New[string, float64](ttlcache.WithTTL[string, float64](cfg.CacheTTL)),
		channelBuffer: cfg.ChannelBuffer,
		quit:          make(chan struct{}),
		done:          make(chan struct{}),
	}

	go c.run()

	return c
}

func (e *Controller) run() {
	defer close(e.done)
	for {
		select {
		case <-e.quit:
			e.cleanup()
			return
		case msg := <-e.incoming:
			e.handleMessage(msg)
		case sub := <-e.sub:
			e.handleSubscription(sub)
		case unsub := <-e.unsub:
			e.handleUnsubscription(unsub)
		}
	}
}

func (e *Controller) handleMessage(msg EBusMessage) {
	e.cache.Set(msg.Topic, msg.Data, ttlcache.DefaultTTL)
	for _, sub := range e.subs[msg.Topic] {
		select {
		case sub <- msg.Data:
		default:
			log.Printf("Channel full for topic %s", msg.Topic)
		}
	}
}

func (e *Controller) handleSubscription(sub newSub) {
	e.subs[sub.topic] = append(e.subs[sub.topic], sub.resp)

	if item := e.cache.Get(sub.topic); item != nil {
		select {
		case sub.resp <- item.Value():
		default:
			log.Printf("Cache hit but channel full for topic %s", sub.topic)
		}
	}
}

func (e *Controller) handleUnsubscription(unsub chan float64) {
	for topic, subs := range e.subs {
		for i, sub := range subs {
			if sub != unsub {
				continue
			}
			subs = append(subs[:i], subs[i+1:]...)
			if len(subs) == 0 {
				delete(e.subs, topic)
			} else {
				e.subs[topic] = subs
			}
			close(unsub)
			return
		}
	}
}

// Close stops the bus and closes all subscriber channels.
func (e *Controller) Close() {
	e.closeOnce.Do(func() {
		close(e.quit)
	})
	<-e.done
}

func (e *Controller) cleanup() {
	e.cache.DeleteAll()
	for topic, subs := range e.subs {
		for _, sub := range subs {
			close(sub)
		}
		delete(e.subs, topic)
	}
}

func (e *Controller) closed() bool {
	select {
	case <-e.quit:
		return true
	default:
		return false
	}
}

func (e *Controller) Publish(topic string, data float64) error {
	if e.closed() {
		return fmt.Errorf("%s: %w", topic, ErrClosed)
	}
	select {
	case e.incoming <- EBusMessage{Topic: topic, Data: data}:
		return nil
	default:
		return fmt.Errorf("%s: %w", topic, ErrPublishChannelFull)
	}
}

// SubscribeFunc calls fn from a separate goroutine for every value published
// on topic until the returned cancel function is called.
func (e *Controller) SubscribeFunc(topic string, fn func(float64)) (cancel func()) {
	respChan := e.Subscribe(topic)
	go func() {
		for v := range respChan {
			fn(v)
		}
	}()
	return func() {
		e.Unsubscribe(respChan)
	}
}

func (e *Controller) Subscribe(topic string) chan float64 {
	respChan := make(chan float64, e.channelBuffer)
	// a closed bus never drains e.sub
	if e.closed() {
		close(respChan)
		return respChan
	}
	select {
	case e.sub <- newSub{topic: topic, resp: respChan}:
	case <-e.quit:
		close(respChan)
	}
	return respChan
}

func (e *Controller) Unsubscribe(channel chan float64) {
	if e.closed() {
		return
	}
	select {
	case e.unsub <- channel:
	case <-e.quit:
	}
}

// Values returns the last value seen on every topic.
func (e *Controller) Values() map[string]float64 {
	values := make(map[string]float64)
	for k, v := range e.cache.Items() {
		values[k] = v.Value()
	}
	return values
}
