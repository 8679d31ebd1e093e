// Package webhttp реализует HTTP-интерфейс общего каталога файлов поверх
// локального диска. Основные маршруты:
//   - GET / — список файлов, свежие сверху.
//   - POST /upload — multipart-загрузка до max_files файлов за запрос.
//   - GET /info/{filename} — метаданные одного файла.
//   - GET|POST /delete/{filename} — подтверждение и удаление.
//   - GET|HEAD /files/* — сырое дерево каталога со списками директорий.
//   - /dav/* — WebDAV только на чтение для скриптовых клиентов.
//   - GET /static/* — встроенные ассеты, без авторизации.
//   - GET /healthz — агрегированная статистика каталога для health-check'ов.
//
// Все маршруты, кроме /static/* и /healthz, закрыты basic auth.
package webhttp
