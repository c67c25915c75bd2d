package markup

const stylesheet = `
body { margin: 0; font-family: Arial, Helvetica, sans-serif; background: #f4f4f4; color: #222; }
.container { max-width: 1200px; margin: 0 auto; padding: 20px; }
h1 { color: #0b3d91; }
.fact { background: #e6f0ff; color: #0032a0; padding: 16px 24px; margin: 24px 0 0; border-radius: 8px; font-size: 18px; font-weight: bold; text-align: center; }
.gallery { display: flex; flex-wrap: wrap; gap: 20px; margin-top: 24px; }
.gallery-item { flex: 1 1 100%; background: #fff; padding: 10px; border-radius: 8px; box-shadow: 0 2px 5px rgba(0,0,0,0.1); }
@media (min-width: 1000px) { .gallery-item { flex: 0 1 31%; } }
.gallery-item img { max-width: 100%; border-radius: 8px; box-shadow: 0 2px 8px rgba(0,0,0,0.08); cursor: pointer; }
.gallery-video { display: block; position: relative; min-height: 80px; }
.play-icon { position: absolute; top: 50%; left: 50%; transform: translate(-50%,-50%); font-size: 48px; color: #fff; text-shadow: 0 2px 8px #000; }
.gallery-link { display: block; margin: 20px 0; }
.modal { display: none; position: fixed; inset: 0; background: rgba(0,0,0,0.85); justify-content: center; align-items: center; z-index: 1000; }
.modal:target { display: flex; }
.modal-backdrop { position: absolute; inset: 0; }
.modal-content { position: relative; background: #fff; padding: 24px 20px 16px; border-radius: 10px; max-width: 90vw; max-height: 90vh; overflow-y: auto; text-align: center; box-shadow: 0 4px 24px rgba(0,0,0,0.18); }
.modal-close { position: absolute; top: 10px; right: 16px; width: 36px; height: 36px; line-height: 36px; border-radius: 50%; background: #d3d3d3; color: #333; font-size: 24px; text-decoration: none; }
.modal-close:hover { background: #bfbfbf; }
.modal-date { color: #666; margin: 8px 0 16px; }
.modal-image, .modal-frame { max-width: 80vw; max-height: 60vh; margin: 10px 0 18px; border: none; border-radius: 8px; }
.modal-explanation { margin: 12px 0 0; font-size: 16px; }
.modal-credit { color: #666; font-size: 14px; }
`

const escapeScript = `
document.addEventListener('keydown', function (event) {
  if (event.key === 'Escape' && location.hash.indexOf('#detail-') === 0) {
    location.hash = '';
  }
});
`
