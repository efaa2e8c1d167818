package handler

import (
	"Rately/config"
	"Rately/dao/cache"
	"Rately/pkg/jwt"
	"Rately/pkg/log"
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	cmap "github.com/orcaman/concurrent-map/v2"
	"go.uber.org/zap"
)

const (
	wsReadWait  = 90 * time.Second
	wsPingEvery = 30 * time.Second
	wsWriteWait = 5 * time.Second
)

var wsUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// wsConn 抽掉推送需要的最小连接面，方便替身测试
type wsConn interface {
	WriteJSON(v interface{}) error
	Close() error
}

// Notification 实时通知通道：挑战完成庆祝、新粉丝、短评被赞
// 事件经 redis 发布，任意节点订阅后推给本节点在线连接
type Notification struct {
	Config *config.Config
	Notify *cache.NotifyStorage

	once  sync.Once
	conns cmap.ConcurrentMap[string, wsConn]
}

func NewNotificationHandler(cfg *config.Config, notify *cache.NotifyStorage) *Notification {
	return &Notification{
		Config: cfg,
		Notify: notify,
		conns:  cmap.New[wsConn](),
	}
}

func (h *Notification) RegisterRouter(r gin.IRouter) {
	h.once.Do(func() {
		go h.dispatch(context.Background())
	})
	r.GET("/v1/ws/notifications", h.HandleWS)
}

// trackConn 登记连接，同一用户的旧连接被新连接顶掉并关闭
func (h *Notification) trackConn(key string, conn wsConn) {
	h.conns.Upsert(key, conn, func(exist bool, old, cur wsConn) wsConn {
		if exist {
			old.Close()
		}
		return cur
	})
}

// releaseConn 只摘掉自己登记的连接，避免误删顶替者
func (h *Notification) releaseConn(key string, conn wsConn) {
	h.conns.RemoveCb(key, func(_ string, v wsConn, exists bool) bool {
		return exists && v == conn
	})
}

// HandleWS 建立通知长连接，令牌通过 query 传递（浏览器 WS 不带自定义 header）
func (h *Notification) HandleWS(c *gin.Context) {
	token := c.Query("token")
	claims, err := jwt.ParseToken([]byte(h.Config.Jwt.Secret), "access", token)
	if err != nil {
		c.Status(http.StatusUnauthorized)
		return
	}
	userID := claims.UserID

	conn, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	sid := uuid.NewString()
	key := strconv.FormatUint(userID, 10)
	h.trackConn(key, conn)
	if err := h.Notify.MarkOnline(c.Request.Context(), userID, sid); err != nil {
		log.L.Error("标记在线失败", zap.Uint64("user_id", userID), zap.Error(err))
	}

	defer func() {
		h.releaseConn(key, conn)
		_ = h.Notify.MarkOffline(context.Background(), userID, sid)
		conn.Close()
	}()

	// 服务端主动 ping，空闲但健康的连接靠 pong 续活
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		ticker := time.NewTicker(wsPingEvery)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(wsWriteWait)); err != nil {
					return
				}
			case <-stop:
				return
			}
		}
	}()

	// 读循环只用于感知断连和响应 pong
	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(wsReadWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsReadWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// dispatch 订阅通知频道，把事件转发给本节点的在线连接
func (h *Notification) dispatch(ctx context.Context) {
	sub := h.Notify.Subscribe(ctx)
	defer sub.Close()

	for msg := range sub.Channel() {
		var event cache.NotifyEvent
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.L.Error("通知事件解析失败", zap.Error(err))
			continue
		}

		key := strconv.FormatUint(event.UserID, 10)
		conn, ok := h.conns.Get(key)
		if !ok {
			continue
		}
		if err := conn.WriteJSON(event); err != nil {
			h.releaseConn(key, conn)
			conn.Close()
		}
	}
}
