package flow

// All user-facing text. Single fixed locale.

const (
	BtnSignup = "ЗАПИСАТЬСЯ"
	BtnBack   = "Назад"

	BtnAdminList  = "Посмотреть записи"
	BtnAdminStats = "Статистика UTM"
	BtnAdminPrune = "Очистить старые записи"
)

const (
	msgGreeting = "Здравствуйте! Вас приветствует электронный помощник массажиста %s! Приглашаю Вас посетить один из видов массажа!"
	msgMainMenu = "Главное меню:"

	msgChooseService = "Выберите тип массажа:"
	msgChooseDay     = "Выберите день:"
	msgChooseTime    = "Выберите время:"

	msgSlotTaken = "К сожалению, это время уже занято. Выберите другое:"

	msgConfirmed = "✅ Вы успешно записались:\n\nУслуга: %s\nДата: %s, %s\n\n❗ Перед сеансом вы получите напоминание. Пожалуйста, включите уведомления."
	msgChannel   = "✅ Вы были добавлены в наш Telegram-канал: %s\nТам вы будете получать полезную информацию о массаже и новых услугах!"

	msgAdminMenu   = "Админ-панель:"
	msgAdminDenied = "Доступ запрещён."
	msgNoRecords   = "Нет записей."
	msgRecord      = "🧑‍🦰 Имя: %s\n🕒 Дата: %s, %s\n💆 Услуга: %s"
	msgStatsHeader = "📊 Статистика источников:\n"
	msgPruned      = "✅ Старые записи удалены."

	dayBusy      = "занято"
	daySlotsTmpl = "есть слоты: %s"
)

var weekdayNames = map[string]string{
	"mon": "Понедельник",
	"tue": "Вторник",
	"wed": "Среда",
	"thu": "Четверг",
	"fri": "Пятница",
	"sat": "Суббота",
	"sun": "Воскресенье",
}

var weekdayByName = map[string]string{
	"понедельник": "mon",
	"вторник":     "tue",
	"среда":       "wed",
	"четверг":     "thu",
	"пятница":     "fri",
	"суббота":     "sat",
	"воскресенье": "sun",
}
