package entities

// NotificationType drives where a push notification takes the user on click.
type NotificationType string

const (
	NotificationNovaMensagem      NotificationType = "nova_mensagem"
	NotificationItemReservado     NotificationType = "item_reservado"
	NotificationReservaConfirmada NotificationType = "reserva_confirmada"
	NotificationGirinhasRecebidas NotificationType = "girinhas_recebidas"
	NotificationGirinhasExpirando NotificationType = "girinhas_expirando"
	NotificationMissaoCompletada  NotificationType = "missao_completada"
	NotificationSistema           NotificationType = "sistema"
)

// PushNotification is the payload delivered to the browser service worker.
type PushNotification struct {
	Title   string           `json:"title"`
	Message string           `json:"message"`
	Type    NotificationType `json:"type"`
	Data    map[string]any   `json:"data,omitempty"`
}

// ResolveURL maps the notification type to the page opened on click.
func (n PushNotification) ResolveURL() string {
	switch n.Type {
	case NotificationNovaMensagem:
		return "/mensagens"
	case NotificationItemReservado, NotificationReservaConfirmada:
		return "/minhas-reservas"
	case NotificationGirinhasRecebidas, NotificationGirinhasExpirando:
		return "/carteira"
	case NotificationMissaoCompletada:
		return "/missoes"
	case NotificationSistema:
		if u, ok := n.Data["action_url"].(string); ok && u != "" {
			return u
		}
	}
	return "/"
}

// Payload is the JSON document published to push endpoints. Both message and body
// are filled because service workers read either.
func (n PushNotification) Payload() map[string]any {
	data := make(map[string]any, len(n.Data)+1)
	for k, v := range n.Data {
		data[k] = v
	}
	data["url"] = n.ResolveURL()
	return map[string]any{
		"title":   n.Title,
		"message": n.Message,
		"body":    n.Message,
		"type":    string(n.Type),
		"data":    data,
	}
}
